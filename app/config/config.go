package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/address-query/internal/addressquery"
)

// ErrInvalidConfig wraps every validation failure of a query config.
var ErrInvalidConfig = errors.New("invalid query config")

// QueryCfg cấu hình cho bộ biên dịch truy vấn địa chỉ
type QueryCfg struct {
	DefaultLanguage string                    `yaml:"default_language" json:"default_language" validate:"required"`
	Languages       []string                  `yaml:"languages" json:"languages" validate:"required,min=1,dive,required"`
	Lenient         bool                      `yaml:"lenient" json:"lenient"`
	Boosts          addressquery.BoostWeights `yaml:"boosts" json:"boosts"`
}

// Default trả về cấu hình mặc định
func Default() QueryCfg {
	return QueryCfg{
		DefaultLanguage: "en",
		Languages:       []string{"en", "de", "fr", "it"},
		Lenient:         false,
		Boosts:          addressquery.DefaultBoostWeights(),
	}
}

// Load đọc cấu hình từ file YAML. Keys missing from the file keep their
// default values.
func Load(path string) (QueryCfg, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read query config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse query config %s: %w", path, err)
	}

	// ENV overrides
	switch os.Getenv("QUERY_LENIENT") {
	case "0":
		cfg.Lenient = false
	case "1":
		cfg.Lenient = true
	}
	if lang := os.Getenv("QUERY_DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = lang
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the tags of the config and that the default language is
// one of the supported ones.
func (c QueryCfg) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.LanguageContext(c.DefaultLanguage); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LanguageContext builds the language context of a request. An empty
// language selects the default one.
func (c QueryCfg) LanguageContext(lang string) (addressquery.LanguageContext, error) {
	if lang == "" {
		lang = c.DefaultLanguage
	}
	return addressquery.NewLanguageContext(lang, c.Languages)
}
