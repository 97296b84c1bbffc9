package sfxtree

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-suffixtree/sfxtesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMississippi(t *testing.T) {
	tree := BuildString("mississippi")

	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"inner repeat", "issi", true},
		{"crosses a branch point", "issip", true},
		{"prefix", "mi", true},
		{"whole text", "mississippi", true},
		{"empty pattern", "", true},
		{"symbols present but not contiguous", "pississ", false},
		{"diverges inside an edge", "issisi", false},
		{"longer than the text", "mississippis", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchString(tree, tt.pattern))
		})
	}

	require.Equal(t, 16, tree.NodeCount())
	require.Equal(t, 10, tree.LeafCount())
	require.NoError(t, tree.Check())
}

func TestBuildEmpty(t *testing.T) {
	tree := BuildString("")

	require.Equal(t, 0, tree.Len())
	require.Equal(t, 0, tree.NodeCount())
	require.Equal(t, 0, tree.LeafCount())
	require.Nil(t, tree.Children(tree.Root()))
	require.Nil(t, tree.Export())
	require.Empty(t, StringLabelMap(tree))
	require.NoError(t, tree.Check())

	require.True(t, tree.Search(nil))
	require.True(t, SearchString(tree, ""))
	require.False(t, SearchString(tree, "a"))

	require.Equal(t, 0, Build[int](nil).NodeCount())
}

func TestBuildSingleSymbol(t *testing.T) {
	tree := BuildString("a")

	require.Equal(t, 1, tree.NodeCount())
	require.Equal(t, 1, tree.LeafCount())
	require.True(t, SearchString(tree, "a"))
	require.False(t, SearchString(tree, "aa"))
	require.False(t, SearchString(tree, "b"))
}

func TestBuildExtensionRules(t *testing.T) {
	type step struct {
		phase int
		rule  Rule
	}
	tests := []struct {
		text string
		want []step
	}{
		{"ab", []step{
			{0, RuleNewBranch},
			{1, RuleLeafExtended}, {1, RuleNewBranch},
		}},
		{"aab", []step{
			{0, RuleNewBranch},
			{1, RuleLeafExtended}, {1, RuleAlreadyPresent},
			{2, RuleNewBranch}, {2, RuleNewBranch},
		}},
		{"abab", []step{
			{0, RuleNewBranch},
			{1, RuleLeafExtended}, {1, RuleNewBranch},
			{2, RuleLeafExtended}, {2, RuleAlreadyPresent},
			{3, RuleAlreadyPresent},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var got []step
			BuildString(tt.text, WithExtensionHook(func(phase int, rule Rule) {
				got = append(got, step{phase, rule})
			}))
			require.Equal(t, tt.want, got)
		})
	}
}

// Each phase performs an amortized constant number of extensions.
func TestBuildExtensionsAreLinear(t *testing.T) {
	tc := sfxtesting.NewTestContext(t, sfxtesting.TestConfig{
		Seed:            7,
		TestLabelPrefix: "TestBuildExtensionsAreLinear",
		Alphabet:        "ab",
		MaxLen:          200,
	})

	texts := [][]byte{
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("abababababababababababababababababababababababab"),
		[]byte("mississippi"),
	}
	for range 50 {
		texts = append(texts, tc.NextText())
	}

	for _, text := range texts {
		var extensions int
		Build(text, WithExtensionHook(func(int, Rule) { extensions++ }))
		require.LessOrEqual(t, extensions, 2*len(text), "text=%q", text)
	}
}

func TestBuildNodeCountBound(t *testing.T) {
	tc := sfxtesting.NewTestContext(t, sfxtesting.TestConfig{
		Seed:            11,
		TestLabelPrefix: "TestBuildNodeCountBound",
		Alphabet:        "abcd",
		MaxLen:          64,
	})

	for range 200 {
		text := tc.NextText()
		tree := Build(text)
		if len(text) >= 2 {
			require.LessOrEqual(t, tree.NodeCount(), 2*len(text)-1, "text=%q", text)
		}
		require.LessOrEqual(t, tree.LeafCount(), len(text))
		require.NoError(t, tree.Check(), "text=%q", text)
	}
}

func TestBuildCopiesInput(t *testing.T) {
	text := []byte("banana")
	tree := Build(text)
	copy(text, "xxxxxx")

	require.True(t, SearchString(tree, "nana"))
	require.False(t, SearchString(tree, "xx"))
}

func TestBuildRunes(t *testing.T) {
	tree := Build([]rune("日本日本語"))

	require.True(t, tree.Search([]rune("本日本")))
	require.True(t, tree.Search([]rune("本語")))
	require.False(t, tree.Search([]rune("語日")))
	require.NoError(t, tree.Check())
}

func TestBuildTokens(t *testing.T) {
	tokens := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	tree := Build(tokens)

	for i := range tokens {
		for j := i; j <= len(tokens); j++ {
			require.True(t, tree.Search(tokens[i:j]), "tokens[%d:%d]", i, j)
		}
	}
	require.False(t, tree.Search([]int{1, 4, 1, 4}))
}

func TestBuildWithLogger(t *testing.T) {
	tc := sfxtesting.NewTestContext(t, sfxtesting.TestConfig{
		TestLabelPrefix: "TestBuildWithLogger",
	})

	tree := BuildString("abracadabra", WithLogger(tc.GetLog()))
	require.True(t, SearchString(tree, "cada"))
	require.NoError(t, tree.Check())
}

func ExampleBuildString() {
	tree := BuildString("mississippi")
	fmt.Println(SearchString(tree, "ssipp"), SearchString(tree, "sisi"))
	// Output: true false
}
