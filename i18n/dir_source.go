package i18n

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
)

// DirSource loads the catalog from a directory tree where every
// immediate subdirectory names a language and holds that language's
// catalog files:
//
//	<root>/
//	  en/
//	    auth.json
//	    common.json
//	  de/
//	    auth.json
//
// Every regular file in a language directory is decoded with the
// configured parser; a file that fails to decode aborts loading with an
// error naming the file. Files merge in lexical name order, so on key
// collisions the entry from the later file wins. A language directory
// that cannot be listed is skipped: the language is simply not
// available. Entries at the root that are not directories are ignored.
type DirSource struct {
	parser Parser
	path   string
}

// NewDirSource creates a new DirSource instance.
// Returns nil if parser is nil or path is empty.
func NewDirSource(parser Parser, path string) *DirSource {
	if parser == nil {
		return nil
	}
	if path == "" {
		return nil
	}
	return &DirSource{parser: parser, path: path}
}

// Load implements the Source interface
func (s *DirSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if s.parser == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if s.path == "" {
		return nil, fmt.Errorf("directory path is empty")
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	translations := make(map[string]map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		lang := entry.Name()
		langDir := filepath.Join(s.path, lang)
		files, err := os.ReadDir(langDir)
		if err != nil {
			// A directory that cannot be listed counts as "no such
			// language yet", not as a configuration problem.
			continue
		}

		msgs := make(map[string]string)
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			filePath := filepath.Join(langDir, file.Name())
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", filePath, err))
			}
			fileMsgs, err := s.parser.Parse(content)
			if err != nil {
				return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
			}
			// os.ReadDir returns entries sorted by name, which makes the
			// merge order and therefore collision winners deterministic.
			maps.Copy(msgs, fileMsgs)
		}
		translations[lang] = msgs
	}

	return translations, nil
}
