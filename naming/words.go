package naming

import (
	"regexp"
	"strings"

	"github.com/erraggy/namingcase/caseerrors"
)

var (
	leadingLowerRegex = regexp.MustCompile(`^[a-z]+\d*`)
	upperWordRegex    = regexp.MustCompile(`[A-Z][a-z]*\d*`)
)

// extractWords splits a classified identifier into its words, preserving
// order and the case found in the source.
func extractWords(id Identifier) ([]string, error) {
	switch id.Case {
	case SingleWord:
		return []string{id.Value}, nil
	case ScreamingSnake, Snake:
		return strings.Split(id.Value, "_"), nil
	case Kebab:
		return strings.Split(id.Value, "-"), nil
	case Camel:
		first := leadingLowerRegex.FindString(id.Value)
		rest := splitPascal(strings.TrimPrefix(id.Value, first))
		return append([]string{first}, rest...), nil
	case Pascal:
		return splitPascal(id.Value), nil
	default:
		return nil, &caseerrors.ExtractionError{Value: id.Value}
	}
}

// splitPascal returns every uppercase-led run; each uppercase letter starts
// a new word.
func splitPascal(s string) []string {
	return upperWordRegex.FindAllString(s, -1)
}

// capitalize upper-cases the first byte and lower-cases the rest (ASCII only).
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return toUpperASCII(word[:1]) + toLowerASCII(word[1:])
}

func composePascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func composeJoined(words []string, sep string, transform func(string) string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = transform(w)
	}
	return strings.Join(out, sep)
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
