package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHungarian(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Identifier
	}{
		{name: "integer prefix", input: "iPageSize", want: Identifier{Pascal, "PageSize"}},
		{name: "string prefix", input: "szName", want: Identifier{Pascal, "Name"}},
		{name: "prefix with digits", input: "p2Point", want: Identifier{Pascal, "Point"}},
		{name: "single letter words kept", input: "bIsOK", want: Identifier{Pascal, "IsOK"}},
		{name: "digits kept", input: "arrItem2Id", want: Identifier{Pascal, "Item2Id"}},

		{name: "pascal is not hungarian", input: "NotACamelCase", want: Identifier{Invalid, "NotACamelCase"}},
		{name: "single word", input: "foo", want: Identifier{Invalid, "foo"}},
		{name: "snake", input: "i_page_size", want: Identifier{Invalid, "i_page_size"}},
		{name: "kebab", input: "i-page-size", want: Identifier{Invalid, "i-page-size"}},
		{name: "screaming snake", input: "I_PAGE", want: Identifier{Invalid, "I_PAGE"}},
		{name: "invalid", input: "i@Page", want: Identifier{Invalid, "i@Page"}},
		{name: "empty", input: "", want: Identifier{Invalid, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHungarian(tt.input)
			assert.Equal(t, tt.want, got, "FromHungarian(%q)", tt.input)
		})
	}
}

// TestFromHungarianResultIsPascal verifies that the words kept after the
// type tag are already capitalized, so joining them without re-casing yields
// a Pascal identifier.
func TestFromHungarianResultIsPascal(t *testing.T) {
	for _, input := range []string{"iPageSize", "lpszFileName", "fooBAR", "aB", "x1Y2Z3"} {
		got := FromHungarian(input)
		assert.Equal(t, Pascal, got.Case, input)
		assert.True(t, IsPascal(got.Value), "%q stripped to %q", input, got.Value)

		words, err := got.Words()
		assert.NoError(t, err)
		for _, w := range words {
			assert.True(t, w[0] >= 'A' && w[0] <= 'Z', "word %q of %q is not capitalized", w, got.Value)
		}
	}
}
