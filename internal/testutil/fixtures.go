// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// GoldenCase is one entry of a golden identifier table.
// Conversion fields are empty for identifiers expected to be invalid.
type GoldenCase struct {
	Input          string `yaml:"input"`
	Case           string `yaml:"case"`
	ScreamingSnake string `yaml:"screaming_snake,omitempty"`
	Snake          string `yaml:"snake,omitempty"`
	Kebab          string `yaml:"kebab,omitempty"`
	Camel          string `yaml:"camel,omitempty"`
	Pascal         string `yaml:"pascal,omitempty"`
	HungarianCase  string `yaml:"hungarian_case"`
	Hungarian      string `yaml:"hungarian"`
}

// LoadGoldenCases reads a YAML list of GoldenCase entries from path.
func LoadGoldenCases(t *testing.T, path string) []GoldenCase {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read golden file")

	var cases []GoldenCase
	require.NoError(t, yaml.Unmarshal(data, &cases), "failed to parse golden file")
	require.NotEmpty(t, cases, "golden file has no cases")
	return cases
}

// NewRand returns a deterministic random source so property tests are
// reproducible.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

// RandomWord returns a word satisfying the single word grammar: all lower,
// all upper, or capitalized letters followed by optional digits.
func RandomWord(r *rand.Rand) string {
	var b strings.Builder
	n := 1 + r.IntN(8)
	switch r.IntN(3) {
	case 0:
		writeRandom(&b, r, lowerLetters, n)
	case 1:
		writeRandom(&b, r, upperLetters, n)
	default:
		writeRandom(&b, r, upperLetters, 1)
		writeRandom(&b, r, lowerLetters, max(n, 2)-1)
	}
	writeRandom(&b, r, digits, r.IntN(4))
	return b.String()
}

func writeRandom(b *strings.Builder, r *rand.Rand, alphabet string, n int) {
	for range n {
		b.WriteByte(alphabet[r.IntN(len(alphabet))])
	}
}

// Capitalize upper-cases the first byte of word and lower-cases the rest.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}

// BuildScreamingSnake repeats word n times, upper-cased and joined by "_".
func BuildScreamingSnake(word string, n int) string {
	return repeatJoin(strings.ToUpper(word), "_", n)
}

// BuildSnake repeats word n times, lower-cased and joined by "_".
func BuildSnake(word string, n int) string {
	return repeatJoin(strings.ToLower(word), "_", n)
}

// BuildKebab repeats word n times, lower-cased and joined by "-".
func BuildKebab(word string, n int) string {
	return repeatJoin(strings.ToLower(word), "-", n)
}

// BuildCamel returns the lower-cased word followed by n capitalized copies.
func BuildCamel(word string, n int) string {
	return strings.ToLower(word) + repeatJoin(Capitalize(word), "", n)
}

// BuildPascal repeats the capitalized word n times.
func BuildPascal(word string, n int) string {
	return repeatJoin(Capitalize(word), "", n)
}

// BuildAllFormats returns word expanded into screaming snake, snake, kebab,
// camel and pascal forms, in that order.
func BuildAllFormats(word string, n int) []string {
	return []string{
		BuildScreamingSnake(word, n),
		BuildSnake(word, n),
		BuildKebab(word, n),
		BuildCamel(word, n),
		BuildPascal(word, n),
	}
}

func repeatJoin(word, sep string, n int) string {
	if n <= 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = word
	}
	return strings.Join(parts, sep)
}
