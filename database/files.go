package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FilesClient owns the on-disk data directory: three flat JSON documents
// (analytics, projects, site settings) plus the uploads directory served as
// static files. Every store persists by rewriting its whole document.
type FilesClient struct {
	DataDir    string
	UploadsDir string
}

// NewFilesClient ensures the data and uploads directories exist and returns
// a client with the resolved paths.
func NewFilesClient(dataDir string) (*FilesClient, error) {
	uploadsDir := filepath.Join(dataDir, "uploads")
	for _, dir := range []string{dataDir, uploadsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	log.Printf("Data directory ready at %s", dataDir)
	return &FilesClient{DataDir: dataDir, UploadsDir: uploadsDir}, nil
}

func (c *FilesClient) AnalyticsPath() string {
	return filepath.Join(c.DataDir, "analytics.json")
}

func (c *FilesClient) ProjectsPath() string {
	return filepath.Join(c.DataDir, "projects.json")
}

func (c *FilesClient) SitePath() string {
	return filepath.Join(c.DataDir, "site.json")
}

// ReadJSON decodes the document at path into v.
func ReadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// WriteJSON rewrites the document at path with v, pretty printed the same
// way the admin tooling expects to find it.
func WriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// InitJSON writes the initial document only when the file does not exist
// yet, so restarts never clobber existing data.
func InitJSON(path string, v interface{}) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return WriteJSON(path, v)
}
