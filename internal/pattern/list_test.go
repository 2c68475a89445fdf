package pattern

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

func TestListFiles(t *testing.T) {
	lister := fakeLister{entries: []string{
		"file.0001.jpg",
		"file.0002.jpg",
		"file.0010.jpg",
		"notes.txt",
		"file.01.jpg",
	}}

	seq, err := ListFiles("/seq/file.####.jpg", lister)
	require.NoError(t, err)

	want := Sequence{
		1:  {-1: "/seq/file.0001.jpg"},
		2:  {-1: "/seq/file.0002.jpg"},
		10: {-1: "/seq/file.0010.jpg"},
	}
	assert.Equal(t, want, seq)
}

func TestListFilesViews(t *testing.T) {
	lister := fakeLister{entries: []string{
		"cam_l.01.exr",
		"cam_r.01.exr",
		"cam_l.02.exr",
	}}

	seq, err := ListFiles("/shots/cam_%v.##.exr", lister)
	require.NoError(t, err)

	want := Sequence{
		1: {0: "/shots/cam_l.01.exr", 1: "/shots/cam_r.01.exr"},
		2: {0: "/shots/cam_l.02.exr"},
	}
	assert.Equal(t, want, seq)
}

func TestListFilesFirstEntryWins(t *testing.T) {
	// A loose %d field lets differently padded names land on the same
	// frame; the entry listed first keeps the slot.
	lister := fakeLister{entries: []string{"file1", "file01"}}

	seq, err := ListFiles("/d/file%d", lister)
	require.NoError(t, err)
	assert.Equal(t, Sequence{1: {-1: "/d/file1"}}, seq)
}

func TestListFilesEmptyPattern(t *testing.T) {
	_, err := ListFiles("", fakeLister{})
	assert.ErrorIs(t, err, ErrEmptyPattern)
}

func TestListFilesListerFailure(t *testing.T) {
	boom := errors.New("no such directory")
	_, err := ListFiles("/gone/file.####.jpg", fakeLister{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestFlatten(t *testing.T) {
	seq := Sequence{
		3: {0: "/d/c.l.3", 1: "/d/c.r.3"},
		1: {0: "/d/c.l.1", 1: "/d/c.r.1"},
		2: {-1: "/d/plain.2"},
	}

	assert.Equal(t, []string{
		"/d/c.l.1", "/d/c.r.1",
		"/d/plain.2",
		"/d/c.l.3", "/d/c.r.3",
	}, Flatten(seq, -1))

	// Filtering to one view keeps viewless entries.
	assert.Equal(t, []string{
		"/d/c.r.1",
		"/d/plain.2",
		"/d/c.r.3",
	}, Flatten(seq, 1))
}

func TestListFilesRoundTrip(t *testing.T) {
	// Rendering frames of a pattern and expanding the pattern over those
	// names gives the frames back.
	var entries []string
	for _, f := range []int{1, 5, 12} {
		name, err := RenderFileName("take_####.dpx", f, -1)
		require.NoError(t, err)
		entries = append(entries, name)
	}

	seq, err := ListFiles("take_####.dpx", fakeLister{entries: entries})
	require.NoError(t, err)
	assert.Equal(t, []string{"take_0001.dpx", "take_0005.dpx", "take_0012.dpx"}, Flatten(seq, -1))
}
