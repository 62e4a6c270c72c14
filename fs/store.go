// Package fs provides file-based storage for downloaded documents.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/docgrab"
)

// Ensure Store implements docgrab.DocumentStore at compile time.
var _ docgrab.DocumentStore = (*Store)(nil)

// Store keeps one file per subpage in a flat output folder.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The folder is created by Init.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output folder.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Init() error {
	if s.dir == "" {
		return docgrab.Errorf(docgrab.EINVALID, "output folder required")
	}
	return os.MkdirAll(s.dir, 0755)
}

func (s *Store) PathFor(pageURL string) string {
	return filepath.Join(s.dir, docgrab.DocumentFilename(pageURL))
}

func (s *Store) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Documents lists regular *.pdf files directly inside the folder.
func (s *Store) Documents() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, docgrab.DocumentExt) || name == docgrab.CombinedName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(s.dir, name)
	}
	return paths, nil
}

func (s *Store) CombinedPath() string {
	return filepath.Join(s.dir, docgrab.CombinedName)
}
