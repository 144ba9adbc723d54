package i18n

import "context"

// Source produces the full translation catalog: a map from language
// code to that language's message key to template mapping. A Source is
// consumed exactly once, when the translator is constructed; nothing
// reloads it afterwards.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]string, error)
}

// MapSource is a Source backed by an in-memory map, mainly useful for
// tests and small fixed catalogs.
type MapSource struct {
	Data map[string]map[string]string
}

// Load implements the Source interface
func (s *MapSource) Load(_ context.Context) (map[string]map[string]string, error) {
	if s.Data == nil {
		return make(map[string]map[string]string), nil
	}
	return s.Data, nil
}
