package sfxtesting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubstrings(t *testing.T) {
	require.Equal(t, map[string]bool{"": true}, Substrings(nil))
	require.Equal(t, map[string]bool{
		"": true, "a": true, "aa": true, "aab": true, "ab": true, "b": true,
	}, Substrings([]byte("aab")))
}

func TestRandomTextIsSeeded(t *testing.T) {
	cfg := TestConfig{Seed: 42, TestLabelPrefix: "TestRandomTextIsSeeded", Alphabet: "xy"}
	a := NewTestContext(t, cfg)
	b := NewTestContext(t, cfg)

	for range 10 {
		ta, tb := a.NextText(), b.NextText()
		require.Equal(t, ta, tb)
		require.LessOrEqual(t, len(ta), DefaultMaxLen)
		require.Empty(t, bytes.Trim(ta, "xy"))
	}
	require.Len(t, a.RandomText(17), 17)
}

func TestMutations(t *testing.T) {
	tc := NewTestContext(t, TestConfig{Seed: 9, TestLabelPrefix: "TestMutations"})
	text := []byte("abcab")

	muts := tc.Mutations(text, 1, 4) // "bca"
	// two swaps, one insertion and two boundary extensions
	require.Len(t, muts, 5)
	require.Equal(t, []byte("cba"), muts[0])
	require.Equal(t, []byte("bac"), muts[1])
	require.Len(t, muts[2], 4)
	require.Equal(t, []byte("bcab"), muts[3][:4])
	require.Len(t, muts[3], 5)
	require.Equal(t, []byte("abca"), muts[4][1:])

	// mutations never alias the text
	for _, m := range muts {
		for i := range m {
			m[i] = 'z'
		}
	}
	require.Equal(t, []byte("abcab"), text)
}
