package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Identifier
	}{
		// Single words
		{name: "lowercase word", input: "foo", want: Identifier{SingleWord, "foo"}},
		{name: "lowercase word with digits", input: "foo123", want: Identifier{SingleWord, "foo123"}},
		{name: "uppercase word", input: "FOO", want: Identifier{SingleWord, "FOO"}},
		{name: "capitalized word", input: "Foo", want: Identifier{SingleWord, "Foo"}},
		{name: "single letter", input: "a", want: Identifier{SingleWord, "a"}},
		{name: "single uppercase letter with digit", input: "A9", want: Identifier{SingleWord, "A9"}},

		// Separated formats
		{name: "screaming snake", input: "FOO_BAR", want: Identifier{ScreamingSnake, "FOO_BAR"}},
		{name: "screaming snake with digits", input: "FOO123_BAR456", want: Identifier{ScreamingSnake, "FOO123_BAR456"}},
		{name: "snake", input: "foo_bar", want: Identifier{Snake, "foo_bar"}},
		{name: "snake three words", input: "get_user_by_id", want: Identifier{Snake, "get_user_by_id"}},
		{name: "kebab", input: "foo-bar", want: Identifier{Kebab, "foo-bar"}},
		{name: "kebab with digits", input: "api-v2", want: Identifier{Kebab, "api-v2"}},

		// Unseparated formats
		{name: "camel", input: "fooBar", want: Identifier{Camel, "fooBar"}},
		{name: "camel with digits", input: "foo123Bar456", want: Identifier{Camel, "foo123Bar456"}},
		{name: "camel with single letter words", input: "aBC", want: Identifier{Camel, "aBC"}},
		{name: "pascal", input: "FooBar", want: Identifier{Pascal, "FooBar"}},
		{name: "pascal with acronym", input: "FOOBar", want: Identifier{Pascal, "FOOBar"}},
		{name: "pascal with digits", input: "A1B2", want: Identifier{Pascal, "A1B2"}},

		// Invalid
		{name: "empty string", input: "", want: Identifier{Invalid, ""}},
		{name: "non-ascii", input: "非英语", want: Identifier{Invalid, "非英语"}},
		{name: "accented letter", input: "über", want: Identifier{Invalid, "über"}},
		{name: "inner punctuation", input: "foo@bar", want: Identifier{Invalid, "foo@bar"}},
		{name: "leading punctuation", input: "@foobar", want: Identifier{Invalid, "@foobar"}},
		{name: "trailing punctuation", input: "foobar@", want: Identifier{Invalid, "foobar@"}},
		{name: "leading separator", input: "_foo", want: Identifier{Invalid, "_foo"}},
		{name: "trailing separator", input: "foo-", want: Identifier{Invalid, "foo-"}},
		{name: "double separator", input: "foo__bar", want: Identifier{Invalid, "foo__bar"}},
		{name: "mixed separators", input: "foo_bar-baz", want: Identifier{Invalid, "foo_bar-baz"}},
		{name: "mixed case snake", input: "Foo_Bar", want: Identifier{Invalid, "Foo_Bar"}},
		{name: "leading digit", input: "1foo", want: Identifier{Invalid, "1foo"}},
		{name: "digits only", input: "123", want: Identifier{Invalid, "123"}},
		{name: "whitespace", input: "foo bar", want: Identifier{Invalid, "foo bar"}},
		{name: "dot separator", input: "foo.bar", want: Identifier{Invalid, "foo.bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, tt.want, got, "Classify(%q)", tt.input)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

// TestClassifyPrecedence verifies that strings satisfying several grammars
// resolve to the earliest case in precedence order.
func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		input       string
		want        Case
		alsoMatches []func(string) bool
	}{
		{"FOO", SingleWord, []func(string) bool{IsScreamingSnake, IsPascal}},
		{"foo", SingleWord, []func(string) bool{IsSnake, IsKebab, IsCamel}},
		{"Foo", SingleWord, []func(string) bool{IsPascal}},
		{"foo1", SingleWord, []func(string) bool{IsSnake, IsKebab, IsCamel}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input).Case)
			for _, match := range tt.alsoMatches {
				assert.True(t, match(tt.input))
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		match func(string) bool
		yes   []string
		no    []string
	}{
		{
			name:  "IsSingleWord",
			match: IsSingleWord,
			yes:   []string{"aaa", "aaa123", "Aaa", "AAA", "A", "Z9"},
			no:    []string{"aAA", "aAa", "AAa", "", "1", "a_a", "a-a"},
		},
		{
			name:  "IsScreamingSnake",
			match: IsScreamingSnake,
			yes:   []string{"FOO", "FOO_BAR", "FOO123_BAR456", "A_B_C"},
			no:    []string{"foo", "FOO_", "_FOO", "FOO__BAR", "FOO-BAR", "Foo_Bar", ""},
		},
		{
			name:  "IsSnake",
			match: IsSnake,
			yes:   []string{"foo", "foo_bar", "foo123_bar456"},
			no:    []string{"FOO", "foo_", "foo-bar", "foo_Bar", "foo__bar", ""},
		},
		{
			name:  "IsKebab",
			match: IsKebab,
			yes:   []string{"foo", "foo-bar", "foo123-bar456"},
			no:    []string{"foo_bar", "-foo", "foo--bar", "Foo-bar", ""},
		},
		{
			name:  "IsCamel",
			match: IsCamel,
			yes:   []string{"foo", "fooBar", "foo123Bar456", "aBC", "fooB1"},
			no:    []string{"FooBar", "foo_bar", "foo1bar", "", "1fooBar"},
		},
		{
			name:  "IsPascal",
			match: IsPascal,
			yes:   []string{"Foo", "FooBar", "Foo123Bar456", "FOO", "A1B2"},
			no:    []string{"fooBar", "Foo_Bar", "Foo-Bar", "", "1Foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.yes {
				assert.True(t, tt.match(s), "%s(%q) should be true", tt.name, s)
			}
			for _, s := range tt.no {
				assert.False(t, tt.match(s), "%s(%q) should be false", tt.name, s)
			}
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, Is(SingleWord, "foo"))
	assert.True(t, Is(Snake, "foo"))
	assert.True(t, Is(Camel, "fooBar"))
	assert.False(t, Is(Pascal, "fooBar"))
	assert.True(t, Is(Invalid, "foo@bar"))
	assert.False(t, Is(Invalid, "foo"))
	assert.False(t, Is(Case(99), "foo"))
}
