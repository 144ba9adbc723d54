package i18n

// Parser decodes a single catalog file into a flat map of message keys
// to templates. A source is configured with exactly one parser and
// decodes every file it discovers with it, so mixing formats within one
// catalog tree is not supported.
type Parser interface {
	Parse(data []byte) (map[string]string, error)
}
