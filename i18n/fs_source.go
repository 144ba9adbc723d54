package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// FSSource loads the catalog from an fs.FS using the same layout and
// merge rules as DirSource. It is the way to ship catalogs compiled
// into the binary via embed.FS.
type FSSource struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSSource creates a new FSSource instance. The dir argument is the
// catalog root inside fsys; use "." when the language directories sit
// at the filesystem root.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewFSSource(parser Parser, fsys fs.FS, dir string) *FSSource {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		return nil
	}
	return &FSSource{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the Source interface
func (s *FSSource) Load(ctx context.Context) (map[string]map[string]string, error) {
	if s.parser == nil || s.fsys == nil {
		return nil, fmt.Errorf("source is not initialized")
	}
	if s.dir == "" {
		return nil, fmt.Errorf("directory path is empty")
	}

	entries, err := fs.ReadDir(s.fsys, s.dir)
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
		files, err := fs.ReadDir(s.fsys, path.Join(s.dir, lang))
		if err != nil {
			continue
		}

		msgs := make(map[string]string)
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			filePath := path.Join(s.dir, lang, file.Name())
			content, err := fs.ReadFile(s.fsys, filePath)
			if err != nil {
				return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", filePath, err))
			}
			fileMsgs, err := s.parser.Parse(content)
			if err != nil {
				return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
			}
			maps.Copy(msgs, fileMsgs)
		}
		translations[lang] = msgs
	}

	return translations, nil
}
