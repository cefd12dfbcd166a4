// Package namingcase provides tools for recognizing and converting identifier
// naming conventions.
//
// # Overview
//
// The library classifies a string into exactly one of six conventions, or
// marks it invalid, and converts any recognized identifier to another
// convention:
//
//   - single_word: foo, FOO, Foo
//   - screaming_snake: FOO_BAR
//   - snake: foo_bar
//   - kebab: foo-bar
//   - camel: fooBar
//   - pascal: FooBar
//
// Words are runs of ASCII letters, optionally followed by digits. Nothing
// else is recognized.
//
// # Packages
//
//   - naming: classification, word extraction, conversion, and Hungarian
//     notation stripping
//   - caseerrors: sentinel and structured error types
//
// The namingcase command exposes the same operations as a CLI and as an MCP
// server over stdio.
//
// # Quick Start
//
//	import "github.com/erraggy/namingcase/naming"
//
//	id := naming.Classify("userProfileId")
//	fmt.Println(id.Case) // camel
//
//	snake, err := id.ToSnake()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(snake) // user_profile_id
//
// Identifiers that match no convention classify as invalid, and converting
// them returns an error wrapping caseerrors.ErrExtraction:
//
//	_, err := naming.Convert("foo__bar", naming.Kebab)
//	errors.Is(err, caseerrors.ErrExtraction) // true
//
// # Version
//
// Version, Commit, and BuildTime report build metadata set via ldflags.
package namingcase
