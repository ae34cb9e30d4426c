// Package skillfs implements domain.SkillSource against the local
// filesystem. These are the only I/O operations the validation pipeline
// performs.
package skillfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/tnez/dot-agents/internal/domain"
)

// DocumentName is the well-known primary document file, matched
// case-sensitively.
const DocumentName = "SKILL.md"

// resourceDirs are the conventional bundled resource directories.
var resourceDirs = []string{"scripts", "templates", "assets", "references"}

// Store reads skill directories from disk.
type Store struct{}

func New() *Store {
	return &Store{}
}

// CheckDir classifies the skill path per the domain error taxonomy.
func (s *Store) CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ErrDirectoryMissing
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return domain.ErrNotADirectory
	}
	return nil
}

// ReadDocument returns SKILL.md as UTF-8 text.
func (s *Store) ReadDocument(dir string) (string, error) {
	path := filepath.Join(dir, DocumentName)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrDocumentMissing
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", domain.ErrDocumentNotFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", domain.ErrDocumentEncoding
	}
	return string(data), nil
}

// FileExists reports whether ref resolves to an existing path relative to
// the skill directory. Existence is the whole contract; symlinks are
// followed like any other path.
func (s *Store) FileExists(dir, ref string) bool {
	_, err := os.Stat(filepath.Join(dir, ref))
	return err == nil
}

// ListResources inventories the files directly under each conventional
// resource directory, sorted by name.
func (s *Store) ListResources(dir string) domain.BundledResources {
	var res domain.BundledResources
	res.Scripts = listFiles(filepath.Join(dir, resourceDirs[0]))
	res.Templates = listFiles(filepath.Join(dir, resourceDirs[1]))
	res.Assets = listFiles(filepath.Join(dir, resourceDirs[2]))
	res.References = listFiles(filepath.Join(dir, resourceDirs[3]))
	return res
}

func listFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}
