package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	entries []string
	err     error
}

func (f fakeLister) List(string) ([]string, error) {
	return f.entries, f.err
}

func TestDiscover(t *testing.T) {
	lister := fakeLister{entries: []string{
		"shot_0001.png",
		"shot_0002.png",
		"shot_0003.png",
		"notes.txt",
		"other_0001.png",
	}}

	seq, err := Discover("/d/shot_0002.png", lister, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, seq.Count())
	assert.True(t, seq.Contains("/d/shot_0001.png"))
	assert.True(t, seq.Contains("/d/shot_0003.png"))
	assert.False(t, seq.Contains("/d/notes.txt"))
	assert.Equal(t, "/d/shot_####.png", seq.GenerateValidSequencePattern())
}

func TestDiscoverListerFailure(t *testing.T) {
	boom := errors.New("gone")
	_, err := Discover("/d/shot_0001.png", fakeLister{err: boom}, nil)
	assert.ErrorIs(t, err, boom)
}

func TestScanDirectory(t *testing.T) {
	lister := fakeLister{entries: []string{
		"shot_0001.png",
		"shot_0002.png",
		"take_0001.png",
		"take_0002.png",
		"readme.md",
	}}

	seqs, err := ScanDirectory("/d", lister, nil)
	require.NoError(t, err)
	require.Len(t, seqs, 3)

	assert.Equal(t, "/d/shot_####.png", seqs[0].GenerateValidSequencePattern())
	assert.Equal(t, "/d/take_####.png", seqs[1].GenerateValidSequencePattern())
	assert.True(t, seqs[2].IsSingleFile())
	assert.Equal(t, "/d/readme.md", seqs[2].GenerateValidSequencePattern())
}

func TestScanDirectoryEmpty(t *testing.T) {
	seqs, err := ScanDirectory("/d", fakeLister{}, nil)
	require.NoError(t, err)
	assert.Empty(t, seqs)
}
