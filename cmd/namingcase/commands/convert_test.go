package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/namingcase/caseerrors"
	"github.com/erraggy/namingcase/naming"
)

func TestHandleConvert_Text(t *testing.T) {
	out, errOut := captureStreams(t, "")

	require.NoError(t, HandleConvert([]string{"-t", "snake", "fooBar", "FooBar", "FOO_BAR", "foo-bar", "foo__bar"}))

	assert.Equal(t, "foo_bar\nfoo_bar\nfoo_bar\nfoo_bar\n", out.String())
	assert.Contains(t, errOut.String(), "foo__bar: conversion error to snake")
}

func TestHandleConvert_TargetSpelling(t *testing.T) {
	for _, target := range []string{"screaming_snake", "SCREAMING_SNAKE", "screaming-snake", "screamingSnake", "ScreamingSnake"} {
		t.Run(target, func(t *testing.T) {
			out, _ := captureStreams(t, "")
			require.NoError(t, HandleConvert([]string{"--to", target, "userProfileId"}))
			assert.Equal(t, "USER_PROFILE_ID\n", out.String())
		})
	}
}

func TestHandleConvert_Quiet(t *testing.T) {
	out, errOut := captureStreams(t, "")

	require.NoError(t, HandleConvert([]string{"-q", "-t", "kebab", "bad__id", "GoodId"}))

	assert.Equal(t, "good-id\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestHandleConvert_Strict(t *testing.T) {
	captureStreams(t, "")

	err := HandleConvert([]string{"--strict", "-t", "camel", "ok_id", "bad__id"})
	require.Error(t, err)
	assert.ErrorIs(t, err, caseerrors.ErrConversion)
	assert.Contains(t, err.Error(), "1 of 2 identifier(s)")
}

func TestHandleConvert_YAML(t *testing.T) {
	out, _ := captureStreams(t, "user_profile\nnope!\n")

	require.NoError(t, HandleConvert([]string{"-t", "pascal", "-f", "yaml", "-"}))

	var got []ConvertResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, ConvertResult{Identifier: "user_profile", SourceCase: naming.Snake, Result: "UserProfile"}, got[0])
	assert.Equal(t, naming.Invalid, got[1].SourceCase)
	assert.Empty(t, got[1].Result)
	assert.NotEmpty(t, got[1].Error)
}

func TestHandleConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing target", []string{"fooBar"}},
		{"unknown target", []string{"-t", "title", "fooBar"}},
		{"single word target", []string{"-t", "single_word", "fooBar"}},
		{"no identifiers", []string{"-t", "snake"}},
		{"bad format", []string{"-t", "snake", "-f", "toml", "fooBar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := captureStreams(t, "")
			assert.Error(t, HandleConvert(tt.args))
			assert.Empty(t, out.String())
		})
	}
}
