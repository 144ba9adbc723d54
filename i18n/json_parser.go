package i18n

import (
	"encoding/json"
	"errors"
)

// JSONParser implements the Parser interface for JSON catalog files.
// A file must hold a single flat JSON object whose values are all
// strings; nested objects, arrays and non-string scalars are rejected.
type JSONParser struct{}

// NewJSONParser returns a parser for .json catalog files.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes data into a flat key-to-template map.
func (p *JSONParser) Parse(data []byte) (map[string]string, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	// JSON null decodes without error but yields no object
	if entries == nil {
		return nil, errors.Join(ErrFailedToParseJSON, errors.New("content is not a JSON object"))
	}
	return entries, nil
}
