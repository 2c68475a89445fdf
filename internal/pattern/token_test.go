package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileTokens(t *testing.T) {
	cases := []struct {
		name string
		stem string
		ext  string

		wantLiterals []string
		wantVars     []Token
	}{
		{
			name: "hashes only", stem: "shot_####", ext: "png",
			wantLiterals: []string{"shot_", ".png"},
			wantVars: []Token{
				{Kind: FrameField, Text: "####", Width: 4, PrecedingLiterals: 5},
			},
		},
		{
			name: "printf and hashes", stem: "file%04dname###", ext: "jpg",
			wantLiterals: []string{"file", "name", ".jpg"},
			wantVars: []Token{
				{Kind: FrameField, Text: "%04d", Width: 4, PrecedingLiterals: 4},
				{Kind: FrameField, Text: "###", Width: 3, PrecedingLiterals: 8},
			},
		},
		{
			name: "loose frame", stem: "img%d", ext: "",
			wantLiterals: []string{"img"},
			wantVars: []Token{
				{Kind: FrameFieldLoose, Text: "%d", PrecedingLiterals: 3},
			},
		},
		{
			name: "short and long views", stem: "cam_%v_%V", ext: "exr",
			wantLiterals: []string{"cam_", "_", ".exr"},
			wantVars: []Token{
				{Kind: ShortView, Text: "%v", PrecedingLiterals: 4},
				{Kind: LongView, Text: "%V", PrecedingLiterals: 5},
			},
		},
		{
			name: "adjacent hash runs split by text", stem: "a##b##", ext: "",
			wantLiterals: []string{"a", "b"},
			wantVars: []Token{
				{Kind: FrameField, Text: "##", Width: 2, PrecedingLiterals: 1},
				{Kind: FrameField, Text: "##", Width: 2, PrecedingLiterals: 2},
			},
		},
		{
			name: "escaped percent is literal", stem: "100%%_####", ext: "",
			wantLiterals: []string{"100%_"},
			wantVars: []Token{
				{Kind: FrameField, Text: "####", Width: 4, PrecedingLiterals: 5},
			},
		},
		{
			name: "trailing percent is literal", stem: "file%", ext: "",
			wantLiterals: []string{"file%"},
		},
		{
			name: "invalid printf letter falls back to text", stem: "file%xname", ext: "",
			wantLiterals: []string{"file", "%x", "name"},
		},
		{
			name: "printf without leading zero falls back to text", stem: "file%4d", ext: "",
			wantLiterals: []string{"file", "%4", "d"},
		},
		{
			name: "no variables at all", stem: "plain", ext: "txt",
			wantLiterals: []string{"plain", ".txt"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Compile(tc.stem, tc.ext)
			require.NoError(t, err)

			var gotLiterals []string
			for _, tok := range p.Literals() {
				gotLiterals = append(gotLiterals, tok.Text)
			}
			assert.Equal(t, tc.wantLiterals, gotLiterals)

			vars := p.Variables()
			if tc.wantVars == nil {
				assert.Empty(t, vars)
				return
			}
			assert.Equal(t, tc.wantVars, vars)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		stem string
		want error
	}{
		{"nested printf field", "file%0%04d", ErrNestedVariable},
		{"percent inside open field", "%0%d", ErrNestedVariable},
		{"open field closed by hash", "%0###", ErrUnknownVariable},
		{"field with wrong closer shape", "%0v", ErrUnknownVariable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compile(tc.stem, "")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
