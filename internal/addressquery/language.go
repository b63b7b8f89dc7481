package addressquery

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var (
	// ErrUnsupportedLanguage is returned for a malformed language tag or a
	// requested language outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrNoLanguages is returned when the supported set is empty.
	ErrNoLanguages = errors.New("no supported languages")
)

// LanguageContext is the requested display language of a search plus every
// language the index carries names for.
type LanguageContext struct {
	requested string
	supported []string
}

// NewLanguageContext canonicalises the tags ("DE", "de-AT" both become "de"),
// drops duplicates while keeping the order, and checks that the requested
// language is supported.
func NewLanguageContext(requested string, supported []string) (LanguageContext, error) {
	if len(supported) == 0 {
		return LanguageContext{}, ErrNoLanguages
	}

	langs := make([]string, 0, len(supported))
	seen := make(map[string]bool, len(supported))
	for _, tag := range supported {
		lang, err := CanonicalLanguage(tag)
		if err != nil {
			return LanguageContext{}, err
		}
		if seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}

	req, err := CanonicalLanguage(requested)
	if err != nil {
		return LanguageContext{}, err
	}
	if !seen[req] {
		return LanguageContext{}, fmt.Errorf("%w: %q not in %v", ErrUnsupportedLanguage, requested, langs)
	}

	return LanguageContext{requested: req, supported: langs}, nil
}

// CanonicalLanguage reduces a BCP 47 tag to its lower-case base language.
func CanonicalLanguage(tag string) (string, error) {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil || t == language.Und {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	base, _ := t.Base()
	return base.String(), nil
}

// Requested returns the canonical requested language.
func (lc LanguageContext) Requested() string { return lc.requested }

// Supported returns the canonical supported languages in configured order.
func (lc LanguageContext) Supported() []string {
	out := make([]string, len(lc.supported))
	copy(out, lc.supported)
	return out
}
