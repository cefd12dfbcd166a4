package naming

import "strings"

// FromHungarian strips the type tag from a Hungarian notation identifier and
// returns the remainder as Pascal.
//
// A Hungarian notation identifier is recognized as camelCase: a lowercase
// prefix followed by capitalized words. The leading lowercase word is
// discarded whatever its length. Any input that does not classify as Camel,
// including a valid Pascal identifier, yields Invalid carrying the original
// string.
//
// Example: "iPageSize" -> Pascal "PageSize", "NotACamelCase" -> Invalid
func FromHungarian(identifier string) Identifier {
	id := Classify(identifier)
	if id.Case != Camel {
		return Identifier{Case: Invalid, Value: identifier}
	}

	words, err := extractWords(id)
	if err != nil || len(words) < 2 {
		return Identifier{Case: Invalid, Value: identifier}
	}
	// Words after the first come from the uppercase-run split and are
	// already capitalized.
	return Identifier{Case: Pascal, Value: strings.Join(words[1:], "")}
}
