package i18n

import "context"

// localeContextKey keys the request language in a context.
type localeContextKey struct{}

// SetLocale returns a child context carrying the given locale.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale reports the locale stored in ctx, or the package default
// "en" when none is set.
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(localeContextKey{}).(string); ok && locale != "" {
		return locale
	}
	return DefaultLanguage
}
