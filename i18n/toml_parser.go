package i18n

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser implements the Parser interface for TOML catalog files.
// A file must hold top-level string assignments only; tables and
// non-string values are rejected.
type TOMLParser struct{}

// NewTOMLParser returns a parser for .toml catalog files.
func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

// Parse decodes data into a flat key-to-template map.
func (p *TOMLParser) Parse(data []byte) (map[string]string, error) {
	var entries map[string]string
	if err := toml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	// An empty document decodes to a nil map
	if entries == nil {
		return nil, errors.Join(ErrFailedToParseTOML, errors.New("content holds no entries"))
	}
	return entries, nil
}
