package i18n

// translateParams holds the per-call parameters of a Translate call.
type translateParams struct {
	lang    string
	replace map[string]string
}

// TranslateOption configures a single Translate call.
type TranslateOption func(*translateParams)

// WithLang requests an explicit language for this call. The language
// must be loaded, otherwise Translate fails with ErrLanguageNotSupported.
// Without this option the translator's default language is used.
func WithLang(lang string) TranslateOption {
	return func(p *translateParams) {
		p.lang = lang
	}
}

// WithReplacements substitutes ${name} placeholders in the resolved
// template with the mapped values. Placeholders without a mapping stay
// in the output verbatim.
func WithReplacements(replace map[string]string) TranslateOption {
	return func(p *translateParams) {
		p.replace = replace
	}
}
