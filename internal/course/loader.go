package course

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-minigolf/internal/course/formats"
)

//go:embed holes/*.yaml
var builtinHoles embed.FS

// Loader handles loading holes from a directory.
type Loader struct {
	Root string

	// Skipped collects the errors of files LoadAll could not use.
	Skipped []error
}

// NewLoader creates a new hole loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all hole files.
// Returns holes sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Hole, error) {
	var holes []Hole
	l.Skipped = nil

	err := filepath.WalkDir(l.Root, func(file string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(file))
		if !isSupportedExtension(ext) {
			return nil
		}

		hole, err := l.LoadFile(file)
		if err != nil {
			// Skip invalid files
			l.Skipped = append(l.Skipped, err)
			return nil
		}

		holes = append(holes, hole)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(holes)
	return holes, nil
}

// LoadFile loads and validates a single hole file.
func (l *Loader) LoadFile(path string) (Hole, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Hole{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parseHole(data, path)
}

// LoadByID loads a specific hole by ID.
func (l *Loader) LoadByID(id string) (Hole, error) {
	holes, err := l.LoadAll()
	if err != nil {
		return Hole{}, err
	}
	h, _, err := Find(holes, id)
	return h, err
}

// ListIDs returns all hole IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	holes, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(holes))
	for i, h := range holes {
		ids[i] = h.ID
	}
	return ids, nil
}

// Default returns the built-in six-hole course.
func Default() ([]Hole, error) {
	entries, err := fs.ReadDir(builtinHoles, "holes")
	if err != nil {
		return nil, fmt.Errorf("reading built-in holes: %w", err)
	}

	holes := make([]Hole, 0, len(entries))
	for _, e := range entries {
		name := path.Join("holes", e.Name())
		data, err := builtinHoles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading built-in hole %s: %w", name, err)
		}
		h, err := parseHole(data, name)
		if err != nil {
			return nil, err
		}
		holes = append(holes, h)
	}

	sortByID(holes)
	return holes, nil
}

// Load returns the holes under root, or the built-in course when root is empty.
// A directory without any usable hole is an error.
func Load(root string) ([]Hole, []error, error) {
	if root == "" {
		holes, err := Default()
		return holes, nil, err
	}

	l := NewLoader(root)
	holes, err := l.LoadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(holes) == 0 {
		return nil, l.Skipped, fmt.Errorf("no holes found in %s", root)
	}
	return holes, l.Skipped, nil
}

// parseHole parses a hole and checks that its geometry is playable.
func parseHole(data []byte, path string) (Hole, error) {
	parsed, err := formats.ParseYAML(data)
	if err != nil {
		return Hole{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	h := fromParsed(parsed, path)
	if _, err := h.Geometry(); err != nil {
		return Hole{}, fmt.Errorf("validating file %s: %w", path, err)
	}
	return h, nil
}

func sortByID(holes []Hole) {
	sort.Slice(holes, func(i, j int) bool {
		return holes[i].ID < holes[j].ID
	})
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
