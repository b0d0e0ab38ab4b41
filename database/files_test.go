package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilesClientCreatesDirectories(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "data")

	client, err := NewFilesClient(dataDir)
	require.NoError(t, err)

	for _, dir := range []string{client.DataDir, client.UploadsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, WriteJSON(path, doc{Name: "hero", Count: 3}))

	var got doc
	require.NoError(t, ReadJSON(path, &got))
	assert.Equal(t, doc{Name: "hero", Count: 3}, got)

	// documents are pretty printed for hand inspection
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"name\"")
}

func TestInitJSONDoesNotClobber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")

	require.NoError(t, InitJSON(path, map[string]string{"state": "initial"}))
	require.NoError(t, InitJSON(path, map[string]string{"state": "second"}))

	var got map[string]string
	require.NoError(t, ReadJSON(path, &got))
	assert.Equal(t, "initial", got["state"])
}

func TestReadJSONMissingFile(t *testing.T) {
	var v map[string]string
	assert.Error(t, ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &v))
}
