// Package i18n loads Java-style .properties message bundles and resolves
// message keys per locale with default-locale fallback.
package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"golang.org/x/text/language"
)

// ErrMissingMessage is returned when a key exists in neither the requested
// locale nor the default locale.
var ErrMissingMessage = errors.New("i18n: message key not found")

// Bundle is a read-only message catalog. It is built once at startup and
// shared by all request handlers.
type Bundle struct {
	defaultLocale string
	messages      map[string]map[string]string // locale -> key -> template
	locales       []string                     // order matches the matcher's supported tags
	matcher       language.Matcher
}

// Load reads every bundle file for basename. A basename of "i18n.messages"
// resolves to i18n/messages.properties for the default locale plus any
// i18n/messages_<locale>.properties siblings, mirroring Java resource-bundle
// naming. Files are read as UTF-8.
func Load(basename, defaultLocale string) (*Bundle, error) {
	dir, stem := splitBasename(basename)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read bundle dir %s: %w", dir, err)
	}

	b := &Bundle{
		defaultLocale: defaultLocale,
		messages:      make(map[string]map[string]string),
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		locale, ok := bundleLocale(entry.Name(), stem)
		if !ok {
			continue
		}
		if locale == "" {
			locale = defaultLocale
		}
		table, err := parseProperties(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if existing, ok := b.messages[locale]; ok {
			for k, v := range table {
				existing[k] = v
			}
		} else {
			b.messages[locale] = table
		}
	}

	if _, ok := b.messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: no bundle for default locale %q under %s", defaultLocale, dir)
	}

	// The default locale goes first so the matcher prefers it on ties.
	tags := []language.Tag{language.Make(defaultLocale)}
	b.locales = []string{defaultLocale}
	for locale := range b.messages {
		if locale == defaultLocale {
			continue
		}
		tags = append(tags, language.Make(locale))
		b.locales = append(b.locales, locale)
	}
	b.matcher = language.NewMatcher(tags)

	return b, nil
}

// DefaultLocale reports the locale used when no Accept-Language match exists.
func (b *Bundle) DefaultLocale() string { return b.defaultLocale }

// Locales lists the loaded locales, default first.
func (b *Bundle) Locales() []string { return b.locales }

// MatchAcceptLanguage picks the best loaded locale for an Accept-Language
// header. Empty or unparseable headers, and headers matching none of the
// loaded locales, resolve to the default locale.
func (b *Bundle) MatchAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return b.defaultLocale
	}
	wanted, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(wanted) == 0 {
		return b.defaultLocale
	}
	_, index, confidence := b.matcher.Match(wanted...)
	if confidence == language.No {
		return b.defaultLocale
	}
	return b.locales[index]
}

// Translate resolves key in the given locale, falling back to the default
// locale. Templates use positional {0}, {1}, ... placeholders; placeholders
// without a supplied argument stay literal.
func (b *Bundle) Translate(locale, key string, args ...interface{}) (string, error) {
	template, ok := b.messages[locale][key]
	if !ok {
		template, ok = b.messages[b.defaultLocale][key]
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingMessage, key)
	}
	for i, arg := range args {
		template = strings.ReplaceAll(template, fmt.Sprintf("{%d}", i), fmt.Sprint(arg))
	}
	return template, nil
}

// splitBasename turns "i18n.messages" into ("i18n", "messages"), treating
// dots as path separators the way Java resource bundles do.
func splitBasename(basename string) (dir, stem string) {
	parts := strings.Split(basename, ".")
	if len(parts) == 1 {
		return ".", parts[0]
	}
	return filepath.Join(parts[:len(parts)-1]...), parts[len(parts)-1]
}

// bundleLocale extracts the locale suffix from a bundle file name, e.g.
// ("messages_fr.properties", "messages") -> ("fr", true) and
// ("messages.properties", "messages") -> ("", true).
func bundleLocale(name, stem string) (string, bool) {
	if !strings.HasSuffix(name, ".properties") {
		return "", false
	}
	base := strings.TrimSuffix(name, ".properties")
	if base == stem {
		return "", true
	}
	if strings.HasPrefix(base, stem+"_") {
		return strings.TrimPrefix(base, stem+"_"), true
	}
	return "", false
}

// parseProperties reads a key=value file. Properties files are sectionless
// INI, so the INI parser covers them.
func parseProperties(path string) (map[string]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", path, err)
	}
	return file.Section("").KeysHash(), nil
}
