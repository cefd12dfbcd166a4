package naming

import "regexp"

// Grammars are anchored; \d only matches ASCII digits in RE2.
var (
	singleWordRegex     = regexp.MustCompile(`^(?:[a-z]+|[A-Z]+|[A-Z][a-z]+)\d*$`)
	screamingSnakeRegex = regexp.MustCompile(`^[A-Z]+\d*(?:_[A-Z]+\d*)*$`)
	snakeRegex          = regexp.MustCompile(`^[a-z]+\d*(?:_[a-z]+\d*)*$`)
	kebabRegex          = regexp.MustCompile(`^[a-z]+\d*(?:-[a-z]+\d*)*$`)
	camelRegex          = regexp.MustCompile(`^[a-z]+\d*(?:[A-Z][a-z]*\d*)*$`)
	pascalRegex         = regexp.MustCompile(`^(?:[A-Z][a-z]*\d*)+$`)
)

// classifyRule pairs a grammar predicate with the case it identifies.
type classifyRule struct {
	match func(string) bool
	kind  Case
}

// classifyRules is evaluated in order; the first match wins.
var classifyRules = []classifyRule{
	{IsSingleWord, SingleWord},
	{IsScreamingSnake, ScreamingSnake},
	{IsSnake, Snake},
	{IsKebab, Kebab},
	{IsCamel, Camel},
	{IsPascal, Pascal},
}

// Classify determines which naming convention identifier belongs to.
// It never fails: unrecognized input is tagged Invalid. The returned
// Identifier always carries identifier unchanged.
//
// Example: "foo" -> SingleWord, "FOO_BAR" -> ScreamingSnake,
// "fooBar" -> Camel, "foo@bar" -> Invalid
func Classify(identifier string) Identifier {
	for _, rule := range classifyRules {
		if rule.match(identifier) {
			return Identifier{Case: rule.kind, Value: identifier}
		}
	}
	return Identifier{Case: Invalid, Value: identifier}
}

// Is reports whether s satisfies the grammar of c, ignoring precedence.
// For Invalid it reports whether s satisfies no grammar at all.
func Is(c Case, s string) bool {
	if c == Invalid {
		return Classify(s).Case == Invalid
	}
	for _, rule := range classifyRules {
		if rule.kind == c {
			return rule.match(s)
		}
	}
	return false
}

// IsSingleWord matches `^(?:[a-z]+|[A-Z]+|[A-Z][a-z]+)\d*$`.
// Example: "aaa", "aaa123", "Aaa", "AAA" match; "aAA", "aAa" do not.
func IsSingleWord(s string) bool {
	return singleWordRegex.MatchString(s)
}

// IsScreamingSnake matches `^[A-Z]+\d*(_[A-Z]+\d*)*$`.
// Example: "FOO", "FOO_BAR", "FOO123_BAR456"
func IsScreamingSnake(s string) bool {
	return screamingSnakeRegex.MatchString(s)
}

// IsSnake matches `^[a-z]+\d*(_[a-z]+\d*)*$`.
// Example: "foo", "foo_bar", "foo123_bar456"
func IsSnake(s string) bool {
	return snakeRegex.MatchString(s)
}

// IsKebab matches `^[a-z]+\d*(-[a-z]+\d*)*$`.
// Example: "foo", "foo-bar", "foo123-bar456"
func IsKebab(s string) bool {
	return kebabRegex.MatchString(s)
}

// IsCamel matches `^[a-z]+\d*([A-Z][a-z]*\d*)*$`.
// Example: "foo", "fooBar", "foo123Bar456"
func IsCamel(s string) bool {
	return camelRegex.MatchString(s)
}

// IsPascal matches `^([A-Z][a-z]*\d*)+$`.
// Example: "Foo", "FooBar", "Foo123Bar456"
func IsPascal(s string) bool {
	return pascalRegex.MatchString(s)
}
