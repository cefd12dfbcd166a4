package naming

import (
	"strings"

	"github.com/erraggy/namingcase/caseerrors"
)

// Case identifies the naming convention of an identifier.
// The zero value is Invalid.
type Case int

const (
	// Invalid matches no recognized convention.
	Invalid Case = iota
	// SingleWord is one word with no separators, e.g. "foo", "FOO", "Foo1".
	// A single word degenerately satisfies several other grammars, so it
	// gets its own category.
	SingleWord
	// ScreamingSnake is uppercase words joined by underscores, e.g. "FOO_BAR".
	ScreamingSnake
	// Snake is lowercase words joined by underscores, e.g. "foo_bar".
	Snake
	// Kebab is lowercase words joined by hyphens, e.g. "foo-bar".
	Kebab
	// Camel is a lowercase word followed by capitalized words, e.g. "fooBar".
	Camel
	// Pascal is capitalized words with no separator, e.g. "FooBar".
	Pascal
)

var caseNames = map[Case]string{
	Invalid:        "invalid",
	SingleWord:     "single_word",
	ScreamingSnake: "screaming_snake",
	Snake:          "snake",
	Kebab:          "kebab",
	Camel:          "camel",
	Pascal:         "pascal",
}

var casesByName = func() map[string]Case {
	m := make(map[string]Case, len(caseNames))
	for c, name := range caseNames {
		m[name] = c
	}
	return m
}()

// String returns the snake_case name of the case.
func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return "invalid"
}

// MarshalText implements encoding.TextMarshaler.
func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Cases returns the recognized conventions in classification precedence order.
// Invalid is not included.
func Cases() []Case {
	return []Case{SingleWord, ScreamingSnake, Snake, Kebab, Camel, Pascal}
}

// ParseCase returns the Case named by name. The name may be written in any
// recognized convention: "screaming_snake", "SCREAMING_SNAKE",
// "screaming-snake", "screamingSnake" and "ScreamingSnake" are equivalent.
func ParseCase(name string) (Case, error) {
	key, err := Classify(strings.TrimSpace(name)).ToSnake()
	if err == nil {
		if c, ok := casesByName[key]; ok {
			return c, nil
		}
	}
	return Invalid, &caseerrors.ConfigError{
		Option:  "case",
		Value:   name,
		Message: "unknown case; valid cases: " + strings.Join(caseNameList(), ", "),
	}
}

func caseNameList() []string {
	names := make([]string, 0, len(caseNames))
	for _, c := range Cases() {
		names = append(names, c.String())
	}
	return names
}
