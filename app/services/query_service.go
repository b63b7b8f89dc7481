package services

import (
	"errors"
	"fmt"
	"slices"

	"github.com/address-query/app/config"
	"github.com/address-query/app/models"
	"github.com/address-query/internal/addressquery"
	"github.com/address-query/internal/normalizer"
	"github.com/address-query/internal/query"
	"go.uber.org/zap"
)

// ErrEmptyAddress is returned when no component survives normalisation.
// Compiling it would yield a query that matches every record.
var ErrEmptyAddress = errors.New("address has no components")

// CompileOptions tùy chọn biên dịch cho một request
type CompileOptions struct {
	Language string // empty selects the configured default
	Lenient  *bool  // nil selects the configured default
}

// CompiledQuery kết quả biên dịch
type CompiledQuery struct {
	Language string
	Lenient  bool
	Query    query.Query
	Source   interface{}
}

// QueryService biên dịch địa chỉ có cấu trúc thành truy vấn tìm kiếm.
// It holds only read-only state and may be shared between requests.
type QueryService struct {
	cfg        config.QueryCfg
	normalizer *normalizer.ComponentNormalizer
	logger     *zap.Logger
}

// NewQueryService tạo mới QueryService
func NewQueryService(cfg config.QueryCfg, normalizer *normalizer.ComponentNormalizer, logger *zap.Logger) *QueryService {
	return &QueryService{
		cfg:        cfg,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Compile normalises the components and compiles them into one query.
func (qs *QueryService) Compile(components models.AddressComponents, opts CompileOptions) (*CompiledQuery, error) {
	langs, err := qs.cfg.LanguageContext(opts.Language)
	if err != nil {
		return nil, fmt.Errorf("language context: %w", err)
	}

	lenient := qs.cfg.Lenient
	if opts.Lenient != nil {
		lenient = *opts.Lenient
	}

	ac := qs.normalize(components)
	if ac.IsEmpty() {
		return nil, ErrEmptyAddress
	}

	qs.logger.Debug("Compiling address query",
		zap.String("language", langs.Requested()),
		zap.Bool("lenient", lenient),
		zap.Bool("has_city", ac.HasCity()),
		zap.Bool("has_district", ac.HasDistrict()),
		zap.Bool("has_postcode", ac.HasPostCode()),
		zap.Bool("has_street", ac.HasStreet()),
		zap.Bool("has_housenumber", ac.HasHouseNumber()))

	// City, postcode, county and district go first: the house number is
	// matched within the city context they build up.
	q := addressquery.NewAddressQueryBuilder(lenient, langs, qs.cfg.Boosts).
		AddCountryCode(ac.CountryCode).
		AddState(ac.State, ac.StateHasMoreDetails()).
		AddCounty(ac.County, ac.CountyHasMoreDetails()).
		AddCity(ac.City, ac.HasDistrict(), ac.HasStreet(), ac.HasPostCode()).
		AddPostalCode(ac.PostCode).
		AddDistrict(ac.District, ac.DistrictHasMoreDetails()).
		AddStreetAndHouseNumber(ac.Street, ac.HouseNumber).
		Build()

	src, err := query.Source(q)
	if err != nil {
		return nil, fmt.Errorf("render query: %w", err)
	}

	return &CompiledQuery{
		Language: langs.Requested(),
		Lenient:  lenient,
		Query:    q,
		Source:   src,
	}, nil
}

// Languages trả về danh sách ngôn ngữ được hỗ trợ
func (qs *QueryService) Languages() []string {
	return slices.Clone(qs.cfg.Languages)
}

func (qs *QueryService) normalize(ac models.AddressComponents) models.AddressComponents {
	return models.AddressComponents{
		CountryCode: qs.normalizer.CountryCode(ac.CountryCode),
		State:       qs.normalizer.Clean(ac.State),
		County:      qs.normalizer.Clean(ac.County),
		City:        qs.normalizer.Clean(ac.City),
		District:    qs.normalizer.Clean(ac.District),
		PostCode:    qs.normalizer.Clean(ac.PostCode),
		Street:      qs.normalizer.Clean(ac.Street),
		HouseNumber: qs.normalizer.Clean(ac.HouseNumber),
	}
}
