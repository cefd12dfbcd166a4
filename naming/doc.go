// Package naming classifies identifiers by naming convention and converts them
// between conventions.
//
// Six conventions are recognized, each defined by an anchored grammar over
// ASCII letters and digits. A word is a run of letters of one case class
// optionally followed by digits:
//
//   - SingleWord: "foo", "FOO", "Foo", "foo123"
//   - ScreamingSnake: "FOO_BAR", "FOO123_BAR456"
//   - Snake: "foo_bar"
//   - Kebab: "foo-bar"
//   - Camel: "fooBar", "foo123Bar456"
//   - Pascal: "FooBar"
//
// Anything else (non-ASCII text, stray punctuation, empty groups, leading or
// trailing separators) is Invalid. Classification never fails; it returns an
// [Identifier] tagged Invalid instead.
//
// Some strings satisfy several grammars ("FOO" is both a single word and a
// screaming snake identifier). [Classify] resolves this with a fixed
// precedence: SingleWord, ScreamingSnake, Snake, Kebab, Camel, Pascal. The
// standalone predicates ([IsSnake], [IsCamel], ...) ignore precedence and may
// overlap.
//
// # Conversion
//
// A classified identifier is split into its words and recomposed under the
// target convention:
//
//	id := naming.Classify("fooBar")
//	snake, err := id.ToSnake() // "foo_bar", nil
//
// Conversion fails only when the identifier is Invalid; the error matches
// [caseerrors.ErrConversion] and wraps a [caseerrors.ExtractionError].
// Digits are never altered.
//
// # Hungarian Notation
//
// [FromHungarian] strips a leading lowercase type tag from a camelCase
// identifier and returns the remainder as Pascal:
//
//	naming.FromHungarian("iPageSize") // Pascal "PageSize"
//
// All functions are pure and safe for concurrent use. The grammars are
// compiled once at package initialization and never modified.
package naming
