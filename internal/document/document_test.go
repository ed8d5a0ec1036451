package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentIsCleanAndUnbound(t *testing.T) {
	d := New("")
	assert.Equal(t, DefaultName, d.Name())
	assert.False(t, d.HasPath())
	assert.False(t, d.Modified())
	assert.True(t, d.MatchesBaseline())
	assert.NotEmpty(t, d.ID())
	assert.NotEqual(t, d.ID(), New("").ID())
}

func TestLoadedDocumentReadsUnmodified(t *testing.T) {
	d := Load("/tmp/notes/todo.txt", "buy milk\n")

	assert.Equal(t, "todo.txt", d.Name())
	assert.Equal(t, "/tmp/notes/todo.txt", d.Path())
	assert.Equal(t, "buy milk\n", d.Text())
	assert.Equal(t, d.Text(), d.Baseline())
	assert.False(t, d.Modified())
}

func TestEditTracksModifiedUntilUndoneOrSaved(t *testing.T) {
	d := Load("/tmp/a.txt", "hello")

	d.SetText("hello!")
	require.True(t, d.Modified())
	require.False(t, d.MatchesBaseline())

	d.SetText("hello")
	require.False(t, d.Modified(), "returning to the baseline clears the flag")
	require.True(t, d.MatchesBaseline())

	d.SetText("hello world")
	d.MarkSaved("")
	require.False(t, d.Modified())
	require.Equal(t, "hello world", d.Baseline())
	require.Equal(t, "/tmp/a.txt", d.Path())
}

func TestMarkSavedRebindsPath(t *testing.T) {
	d := New("*new")
	d.SetText("draft")
	d.MarkSaved("/tmp/out/draft.txt")

	assert.Equal(t, "draft.txt", d.Name())
	assert.Equal(t, "/tmp/out/draft.txt", d.Path())
	assert.False(t, d.Modified())
}

func TestModifiedAgreesWithBaselineOracle(t *testing.T) {
	d := Load("/tmp/a.txt", "abc")
	edits := []string{"abcd", "abc", "", "xyz", "abc", "ab", "abc"}
	for _, e := range edits {
		d.SetText(e)
		assert.Equal(t, !d.MatchesBaseline(), d.Modified(), "after edit %q", e)
	}
}

func TestChanges(t *testing.T) {
	d := Load("/tmp/a.txt", "hello world")
	assert.True(t, d.Changes().empty())
	assert.Equal(t, "no changes", d.Changes().String())

	d.SetText("hello brave world")
	c := d.Changes()
	assert.Equal(t, 6, c.Inserted)
	assert.Equal(t, 0, c.Deleted)

	d.SetText("hello")
	c = d.Changes()
	assert.Equal(t, 0, c.Inserted)
	assert.Equal(t, 6, c.Deleted)
	assert.Equal(t, "0 characters added, 6 removed", c.String())
}
