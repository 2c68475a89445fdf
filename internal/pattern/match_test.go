package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func compilePattern(t *testing.T, stem, ext string) *Pattern {
	t.Helper()
	p, err := Compile(stem, ext)
	require.NoError(t, err)
	return p
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name     string
		stem     string
		ext      string
		filename string

		wantOK    bool
		wantFrame int
		wantView  int
	}{
		{
			name: "hash frame", stem: "shot_####", ext: "png",
			filename: "shot_0001.png",
			wantOK:   true, wantFrame: 1, wantView: -1,
		},
		{
			name: "hash frame large number without padding", stem: "shot_##", ext: "png",
			filename: "shot_10000.png",
			wantOK:   true, wantFrame: 10000, wantView: -1,
		},
		{
			name: "hash frame rejects extra padding", stem: "shot_##", ext: "png",
			filename: "shot_010000.png",
			wantOK:   false,
		},
		{
			name: "hash frame rejects too few digits", stem: "shot_####", ext: "png",
			filename: "shot_01.png",
			wantOK:   false,
		},
		{
			name: "printf frame", stem: "file%04d", ext: "jpg",
			filename: "file0042.jpg",
			wantOK:   true, wantFrame: 42, wantView: -1,
		},
		{
			name: "loose frame takes any width", stem: "img%d", ext: "tif",
			filename: "img7.tif",
			wantOK:   true, wantFrame: 7, wantView: -1,
		},
		{
			name: "two frame fields must agree", stem: "file####_%04d", ext: "png",
			filename: "file0003_0003.png",
			wantOK:   true, wantFrame: 3, wantView: -1,
		},
		{
			name: "two frame fields disagreeing", stem: "file####_%04d", ext: "png",
			filename: "file0003_0004.png",
			wantOK:   false,
		},
		{
			name: "short view left", stem: "cam_%v.####", ext: "exr",
			filename: "cam_l.0010.exr",
			wantOK:   true, wantFrame: 10, wantView: 0,
		},
		{
			name: "short view right", stem: "cam_%v.####", ext: "exr",
			filename: "cam_r.0010.exr",
			wantOK:   true, wantFrame: 10, wantView: 1,
		},
		{
			name: "long view left", stem: "cam_%V.####", ext: "exr",
			filename: "cam_left.0010.exr",
			wantOK:   true, wantFrame: 10, wantView: 0,
		},
		{
			name: "long view right", stem: "cam_%V.####", ext: "exr",
			filename: "cam_right.0010.exr",
			wantOK:   true, wantFrame: 10, wantView: 1,
		},
		{
			name: "numbered view short", stem: "cam_%v.####", ext: "exr",
			filename: "cam_view2.0010.exr",
			wantOK:   true, wantFrame: 10, wantView: 2,
		},
		{
			name: "numbered view long", stem: "cam_%V.####", ext: "exr",
			filename: "cam_view12.0010.exr",
			wantOK:   true, wantFrame: 10, wantView: 12,
		},
		{
			name: "short view where long expected", stem: "cam_%V.####", ext: "exr",
			filename: "cam_l.0010.exr",
			wantOK:   false,
		},
		{
			name: "stray l before the view field is plain text", stem: "fl_%v.##", ext: "png",
			filename: "fl_r.01.png",
			wantOK:   true, wantFrame: 1, wantView: 1,
		},
		{
			name: "missing literal", stem: "shot_####", ext: "png",
			filename: "take_0001.png",
			wantOK:   false,
		},
		{
			name: "digits at unexpected offset", stem: "shot_####", ext: "png",
			filename: "shot_x0001.png",
			wantOK:   false,
		},
		{
			name: "no variables matches on literals alone", stem: "marleen", ext: "",
			filename: "marleenBG.png",
			wantOK:   true, wantFrame: 0, wantView: -1,
		},
		{
			name: "literal out of order", stem: "ab_cd", ext: "",
			filename: "cd_ab",
			wantOK:   false,
		},
		{
			name: "unconsumed variable fails", stem: "shot_####", ext: "",
			filename: "shot_",
			wantOK:   false,
		},
		{
			name: "trailing digits without extension", stem: "shot_####", ext: "",
			filename: "shot_0008",
			wantOK:   true, wantFrame: 8, wantView: -1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := compilePattern(t, tc.stem, tc.ext)
			frame, view, ok := p.Match(tc.filename)
			require.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				return
			}
			require.Equal(t, tc.wantFrame, frame)
			require.Equal(t, tc.wantView, view)
		})
	}
}

func TestMatchViewAgreement(t *testing.T) {
	// Two view fields in one pattern must resolve to the same view.
	p := compilePattern(t, "%V/cam_%v.####", "exr")
	_, _, ok := p.Match("left/cam_l.0001.exr")
	require.True(t, ok)

	_, _, ok = p.Match("left/cam_r.0001.exr")
	require.False(t, ok)
}
