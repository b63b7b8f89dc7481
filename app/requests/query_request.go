package requests

import "github.com/address-query/app/models"

// CompileQueryRequest request biên dịch một địa chỉ có cấu trúc
type CompileQueryRequest struct {
	CountryCode *string `json:"country_code,omitempty" binding:"omitempty,iso3166_1_alpha2"` // Mã quốc gia ISO 3166-1 (viết hoa)
	State       *string `json:"state,omitempty" binding:"omitempty,max=255"`
	County      *string `json:"county,omitempty" binding:"omitempty,max=255"`
	City        *string `json:"city,omitempty" binding:"omitempty,max=255"`
	District    *string `json:"district,omitempty" binding:"omitempty,max=255"`
	PostCode    *string `json:"postcode,omitempty" binding:"omitempty,max=32"`
	Street      *string `json:"street,omitempty" binding:"omitempty,max=255"`
	HouseNumber *string `json:"housenumber,omitempty" binding:"omitempty,max=32"`
	Language    string  `json:"language,omitempty" binding:"omitempty,min=2,max=35"` // Ngôn ngữ hiển thị
	Lenient     *bool   `json:"lenient,omitempty"`                                   // Cho phép sai chính tả
}

// Components trả về các thành phần địa chỉ của request
func (r CompileQueryRequest) Components() models.AddressComponents {
	return models.AddressComponents{
		CountryCode: r.CountryCode,
		State:       r.State,
		County:      r.County,
		City:        r.City,
		District:    r.District,
		PostCode:    r.PostCode,
		Street:      r.Street,
		HouseNumber: r.HouseNumber,
	}
}
