// ==============================================================================================
// FILE: internal/project/project.go
// ==============================================================================================
// PACKAGE: project
// PURPOSE: Project scaffolding and the Book.toml manifest (spec.md §6,
//          supplemented from original_source/src/projects/project.rs and
//          config.rs): a fixed source/intermediate directory layout, a
//          fixed main.prs entry file name, and TOML read/write of the
//          project's name and version via pelletier/go-toml/v2.
// ==============================================================================================

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// SourceDir holds *.prs source files.
	SourceDir = "source"
	// IntermediateDir holds cached token streams mirroring SourceDir.
	IntermediateDir = "intermediate"
	// EntryFile is the project's single generated entry source file.
	EntryFile = "main.prs"
	// ManifestFile is the project manifest's fixed file name.
	ManifestFile = "Book.toml"
	// SourceExtension is the required extension for source files.
	SourceExtension = ".prs"

	entryTemplate = "! the entry point for this project\nso result is Number.\n"
)

// Manifest is the Book.toml project manifest: name and version under a
// [project] table.
type Manifest struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"project"`
}

// NewManifest seeds a manifest for a freshly scaffolded project.
func NewManifest(name string) *Manifest {
	m := &Manifest{}
	m.Project.Name = name
	m.Project.Version = "0.1.0"
	return m
}

// Load reads and parses a Book.toml manifest from dir.
func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	return &m, nil
}

// Write serializes the manifest to dir/Book.toml.
func (m *Manifest) Write(dir string) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}
	return os.WriteFile(filepath.Join(dir, ManifestFile), data, 0o644)
}

// New scaffolds a fresh project skeleton at <root>/<name>: the
// source/intermediate directories, a templated main.prs entry file, and a
// Book.toml manifest naming the new project at version 0.1.0.
func New(root, name string) error {
	dir := filepath.Join(root, name)
	sourceDir := filepath.Join(dir, SourceDir)
	if err := os.MkdirAll(sourceDir, 0o755); err != nil {
		return fmt.Errorf("scaffolding %s: %w", dir, err)
	}
	if err := os.WriteFile(filepath.Join(sourceDir, EntryFile), []byte(entryTemplate), 0o644); err != nil {
		return fmt.Errorf("writing entry file: %w", err)
	}
	return NewManifest(name).Write(dir)
}

// Clean removes the intermediate directory under root, the project-relative
// form of the cache package's Clean.
func Clean(root string) error {
	return os.RemoveAll(filepath.Join(root, IntermediateDir))
}
