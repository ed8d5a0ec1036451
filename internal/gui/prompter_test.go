package gui

import (
	"testing"

	"fyne.io/fyne/v2/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompterFilterMatchesConfiguredExtensions(t *testing.T) {
	p := NewPrompter(nil, []string{".txt", ".py", ".pyw"}, nil)

	filter := p.filter()
	require.NotNil(t, filter)
	assert.True(t, filter.Matches(storage.NewFileURI("/notes/todo.txt")))
	assert.True(t, filter.Matches(storage.NewFileURI("/src/main.PYW")))
	assert.False(t, filter.Matches(storage.NewFileURI("/img/logo.png")))

	assert.Nil(t, NewPrompter(nil, nil, nil).filter())
}
