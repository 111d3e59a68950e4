package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinesEveryPage(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{PlantsList, About, Create, Detail, Edit, Error, "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestStaticPagesRender(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{About, Create, Error} {
		var buf bytes.Buffer
		require.NoError(t, tmpl.ExecuteTemplate(&buf, name, map[string]any{}), name)
		assert.Contains(t, buf.String(), "</html>", name)
	}
}
