package i18n

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML catalog files.
// A file must hold a flat mapping with string values only.
type YAMLParser struct{}

// NewYAMLParser returns a parser for .yaml and .yml catalog files.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes data into a flat key-to-template map.
func (p *YAMLParser) Parse(data []byte) (map[string]string, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	// Empty documents and explicit nulls decode to a nil map
	if entries == nil {
		return nil, errors.Join(ErrFailedToParseYAML, errors.New("content is not a mapping"))
	}
	return entries, nil
}
