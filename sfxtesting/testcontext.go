package sfxtesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/require"
)

// TestContext carries the logger and seeded random source shared by a test.
type TestContext struct {
	Log  logger.Logger
	T    *testing.T
	Rand *rand.Rand
	cfg  TestConfig
}

// Defaults applied by NewTestContext to an unset TestConfig.
const (
	DefaultAlphabet = "abc"
	DefaultMaxLen   = 24
)

// TestConfig configures the texts a TestContext generates.
type TestConfig struct {
	// We seed the RNG from Seed. It is normal to force it to some fixed value
	// so that the generated texts are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	Alphabet        string // can be "" defaults to DefaultAlphabet
	MaxLen          int    // can be 0 defaults to DefaultMaxLen
}

// NewTestContext applies defaults, seeds the random source and creates a
// logger named after TestLabelPrefix.
func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.Alphabet == "" {
		cfg.Alphabet = DefaultAlphabet
	}
	if cfg.MaxLen == 0 {
		cfg.MaxLen = DefaultMaxLen
	}
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		cfg:  cfg,
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomText returns a text of exactly n symbols drawn from the configured
// alphabet.
func (c *TestContext) RandomText(n int) []byte {
	require.NotEmpty(c.T, c.cfg.Alphabet)
	out := make([]byte, n)
	for i := range out {
		out[i] = c.cfg.Alphabet[c.Rand.Intn(len(c.cfg.Alphabet))]
	}
	return out
}

// NextText returns a text of random length in [0, MaxLen].
func (c *TestContext) NextText() []byte {
	return c.RandomText(c.Rand.Intn(c.cfg.MaxLen + 1))
}

// Substrings returns every distinct substring of text, including the empty
// one, keyed by its string form.
func Substrings(text []byte) map[string]bool {
	subs := map[string]bool{"": true}
	for i := range text {
		for j := i + 1; j <= len(text); j++ {
			subs[string(text[i:j])] = true
		}
	}
	return subs
}

// Mutations derives patterns near text[i:j]: adjacent swaps, single symbol
// insertions and extensions past either end of text. Some may still be real
// substrings; callers check against Substrings.
func (c *TestContext) Mutations(text []byte, i, j int) [][]byte {
	require.True(c.T, 0 <= i && i <= j && j <= len(text))
	sub := text[i:j]
	var out [][]byte

	for k := 0; k+1 < len(sub); k++ {
		if sub[k] == sub[k+1] {
			continue
		}
		m := append([]byte(nil), sub...)
		m[k], m[k+1] = m[k+1], m[k]
		out = append(out, m)
	}

	sym := c.randomSymbol()
	at := c.Rand.Intn(len(sub) + 1)
	ins := make([]byte, 0, len(sub)+1)
	ins = append(ins, sub[:at]...)
	ins = append(ins, sym)
	ins = append(ins, sub[at:]...)
	out = append(out, ins)

	// extend beyond the boundaries of the indexed text
	out = append(out, append(append([]byte(nil), text[i:]...), c.randomSymbol()))
	out = append(out, append([]byte{c.randomSymbol()}, text[:j]...))
	return out
}

func (c *TestContext) randomSymbol() byte {
	return c.cfg.Alphabet[c.Rand.Intn(len(c.cfg.Alphabet))]
}
