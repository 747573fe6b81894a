package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Execute(t *testing.T) {
	fsys := fstest.MapFS{
		"greet.tmpl": {Data: []byte(`Hello {{upper .Name}}: {{truncate .Body 5}}`)},
	}

	m, err := NewManager(fsys)
	require.NoError(t, err)
	assert.True(t, m.TemplateExists("greet.tmpl"))
	assert.False(t, m.TemplateExists("missing.tmpl"))

	out, err := m.ExecuteTemplate("greet.tmpl", map[string]string{"Name": "fra", "Body": "abcdefgh"})
	require.NoError(t, err)
	assert.Equal(t, "Hello FRA: abcde...", out)

	_, err = m.ExecuteTemplate("missing.tmpl", nil)
	assert.Error(t, err)
}

func TestNewManager_NoMatches(t *testing.T) {
	_, err := NewManager(fstest.MapFS{"readme.md": {Data: []byte("x")}})
	assert.Error(t, err)
}
