package naming

import "github.com/erraggy/namingcase/caseerrors"

// Identifier is an identifier tagged with the naming convention it was
// classified as. Value always holds the original string unchanged.
//
// Build one with [Classify] or [FromHungarian]. Values constructed by hand
// whose Value does not satisfy the Case grammar convert without error but
// may produce empty or partial output.
type Identifier struct {
	Case  Case
	Value string
}

// String returns the wrapped identifier unchanged, for every case including
// Invalid.
func (id Identifier) String() string {
	return id.Value
}

// Valid reports whether the identifier is in a recognized convention.
func (id Identifier) Valid() bool {
	return id.Case != Invalid
}

// Words returns the words that make up the identifier, in source order and
// with their original casing.
func (id Identifier) Words() ([]string, error) {
	return extractWords(id)
}

// ToScreamingSnake converts the identifier to SCREAMING_SNAKE_CASE.
// Example: "Screaming" -> "SCREAMING", "camelCase" -> "CAMEL_CASE"
func (id Identifier) ToScreamingSnake() (string, error) {
	words, err := id.words(ScreamingSnake)
	if err != nil {
		return "", err
	}
	return composeJoined(words, "_", toUpperASCII), nil
}

// ToSnake converts the identifier to snake_case.
// Example: "Snake" -> "snake", "kebab-case" -> "kebab_case"
func (id Identifier) ToSnake() (string, error) {
	words, err := id.words(Snake)
	if err != nil {
		return "", err
	}
	return composeJoined(words, "_", toLowerASCII), nil
}

// ToKebab converts the identifier to kebab-case.
// Example: "Kebab" -> "kebab", "snake_case" -> "snake-case"
func (id Identifier) ToKebab() (string, error) {
	words, err := id.words(Kebab)
	if err != nil {
		return "", err
	}
	return composeJoined(words, "-", toLowerASCII), nil
}

// ToCamel converts the identifier to camelCase. The first word is
// lower-cased; every following word is capitalized.
// Example: "PascalCase" -> "pascalCase", "snake_case" -> "snakeCase"
func (id Identifier) ToCamel() (string, error) {
	words, err := id.words(Camel)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", nil
	}
	return toLowerASCII(words[0]) + composePascal(words[1:]), nil
}

// ToPascal converts the identifier to PascalCase.
// Example: "camelCase" -> "CamelCase", "snake_case" -> "SnakeCase"
func (id Identifier) ToPascal() (string, error) {
	words, err := id.words(Pascal)
	if err != nil {
		return "", err
	}
	return composePascal(words), nil
}

// To converts the identifier to target. SingleWord and Invalid are not
// valid targets.
func (id Identifier) To(target Case) (string, error) {
	switch target {
	case ScreamingSnake:
		return id.ToScreamingSnake()
	case Snake:
		return id.ToSnake()
	case Kebab:
		return id.ToKebab()
	case Camel:
		return id.ToCamel()
	case Pascal:
		return id.ToPascal()
	default:
		return "", &caseerrors.ConversionError{
			Value:  id.Value,
			Target: target.String(),
			Reason: "unsupported target",
		}
	}
}

// Convert classifies identifier and converts it to target.
func Convert(identifier string, target Case) (string, error) {
	return Classify(identifier).To(target)
}

// words extracts the identifier's words, reporting failures as a conversion
// to target.
func (id Identifier) words(target Case) ([]string, error) {
	words, err := extractWords(id)
	if err != nil {
		return nil, &caseerrors.ConversionError{
			Value:  id.Value,
			Target: target.String(),
			Cause:  err,
		}
	}
	return words, nil
}

