package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, entry := range entries {
		name := path.Join("builtin", entry.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading built-in level %s: %w", name, err)
		}
		parsed, err := parseByExtension(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("parsing built-in level %s: %w", name, err)
		}
		levels = append(levels, Level{GameLevel: parsed})
	}

	sortAndNumber(levels)
	return levels, nil
}

// Catalog returns the built-in levels merged with the levels found under dir.
// A level on disk replaces a built-in level with the same ID.
// An empty or missing dir yields the built-in levels alone.
func Catalog(dir string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return levels, nil
	}

	custom, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range custom {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		byID[lvl.ID] = len(levels)
		levels = append(levels, lvl)
	}

	sortAndNumber(levels)
	return levels, nil
}
