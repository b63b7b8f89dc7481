package normalizer

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ComponentNormalizer cleans the raw address components of a request before
// they are compiled into a query. It keeps the script and diacritics of the
// input: names are matched against per-language raw name fields.
type ComponentNormalizer struct {
	logger   *zap.Logger
	validate *validator.Validate
}

// NewComponentNormalizer tạo mới ComponentNormalizer
func NewComponentNormalizer(logger *zap.Logger) *ComponentNormalizer {
	return &ComponentNormalizer{
		logger:   logger,
		validate: validator.New(),
	}
}

// Clean NFC-normalises a component and collapses runs of whitespace into one
// space. Blank values become nil (absent).
func (n *ComponentNormalizer) Clean(value *string) *string {
	if value == nil {
		return nil
	}

	s := strings.Join(strings.Fields(norm.NFC.String(*value)), " ")
	if s == "" {
		return nil
	}
	return &s
}

// CountryCode returns the cleaned, upper-cased ISO 3166-1 alpha-2 code, or
// nil when the value is not an assigned code.
func (n *ComponentNormalizer) CountryCode(value *string) *string {
	s := n.Clean(value)
	if s == nil {
		return nil
	}

	// Casers are stateful, one per call.
	code := cases.Upper(language.Und).String(*s)
	if err := n.validate.Var(code, "iso3166_1_alpha2"); err != nil {
		n.logger.Warn("Dropping invalid country code", zap.String("country_code", *value), zap.Error(err))
		return nil
	}
	return &code
}
