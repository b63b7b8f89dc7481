package models

// AddressComponents các thành phần của một địa chỉ có cấu trúc. A nil field
// is absent.
type AddressComponents struct {
	CountryCode *string `json:"country_code,omitempty"`
	State       *string `json:"state,omitempty"`
	County      *string `json:"county,omitempty"`
	City        *string `json:"city,omitempty"`
	District    *string `json:"district,omitempty"`
	PostCode    *string `json:"postcode,omitempty"`
	Street      *string `json:"street,omitempty"`
	HouseNumber *string `json:"housenumber,omitempty"`
}

// IsEmpty reports whether no component is present.
func (ac AddressComponents) IsEmpty() bool {
	return ac.CountryCode == nil && ac.State == nil && ac.County == nil && ac.City == nil &&
		ac.District == nil && ac.PostCode == nil && ac.Street == nil && ac.HouseNumber == nil
}

func (ac AddressComponents) HasCity() bool        { return ac.City != nil }
func (ac AddressComponents) HasDistrict() bool    { return ac.District != nil }
func (ac AddressComponents) HasPostCode() bool    { return ac.PostCode != nil }
func (ac AddressComponents) HasStreet() bool      { return ac.Street != nil }
func (ac AddressComponents) HasHouseNumber() bool { return ac.HouseNumber != nil }

// StateHasMoreDetails: any component finer than the state was given.
func (ac AddressComponents) StateHasMoreDetails() bool {
	return ac.County != nil || ac.CountyHasMoreDetails()
}

// CountyHasMoreDetails: a city-level or finer component was given.
func (ac AddressComponents) CountyHasMoreDetails() bool {
	return ac.City != nil || ac.PostCode != nil || ac.District != nil || ac.DistrictHasMoreDetails()
}

// DistrictHasMoreDetails: a street-level component was given.
func (ac AddressComponents) DistrictHasMoreDetails() bool {
	return ac.Street != nil || ac.HouseNumber != nil
}
