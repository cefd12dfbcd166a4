package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleClassify_Text(t *testing.T) {
	out, _ := captureStreams(t, "")

	require.NoError(t, HandleClassify([]string{"fooBar", "FOO_BAR", "foo__bar"}))

	lines := splitLines(out.String())
	require.Len(t, lines, 3)
	assert.Regexp(t, `^fooBar\s+Camel$`, lines[0])
	assert.Regexp(t, `^FOO_BAR\s+Screaming Snake$`, lines[1])
	assert.Regexp(t, `^foo__bar\s+Invalid$`, lines[2])
}

func TestHandleClassify_Words(t *testing.T) {
	out, _ := captureStreams(t, "")

	require.NoError(t, HandleClassify([]string{"-w", "userProfileId"}))

	assert.Regexp(t, `^userProfileId\s+Camel\s+user Profile Id\n$`, out.String())
}

func TestHandleClassify_JSON(t *testing.T) {
	out, _ := captureStreams(t, "")

	require.NoError(t, HandleClassify([]string{"-f", "json", "--words", "foo-bar", "not valid"}))

	var got []ClassifyResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "kebab", got[0].Case.String())
	assert.Equal(t, []string{"foo", "bar"}, got[0].Words)
	assert.Equal(t, "invalid", got[1].Case.String())
	assert.Nil(t, got[1].Words)
}

func TestHandleClassify_Stdin(t *testing.T) {
	out, _ := captureStreams(t, "FooBar\nfoo\n")

	require.NoError(t, HandleClassify([]string{"-"}))

	lines := splitLines(out.String())
	require.Len(t, lines, 2)
	assert.Regexp(t, `^FooBar\s+Pascal$`, lines[0])
	assert.Regexp(t, `^foo\s+Single Word$`, lines[1])
}

func TestHandleClassify_Errors(t *testing.T) {
	t.Run("no identifiers", func(t *testing.T) {
		_, errOut := captureStreams(t, "")
		err := HandleClassify(nil)
		require.Error(t, err)
		assert.Contains(t, errOut.String(), "Usage: namingcase classify")
	})

	t.Run("bad format", func(t *testing.T) {
		captureStreams(t, "")
		assert.Error(t, HandleClassify([]string{"-f", "xml", "foo"}))
	})

	t.Run("help", func(t *testing.T) {
		_, errOut := captureStreams(t, "")
		assert.NoError(t, HandleClassify([]string{"--help"}))
		assert.Contains(t, errOut.String(), "Conventions")
	})
}
