package addressquery

// BoostWeights are the relevance weights applied per address field.
type BoostWeights struct {
	// State names are abbreviated inconsistently ("NY" vs "New York"), so
	// the state weight stays low.
	State       float64 `yaml:"state" json:"state" validate:"gt=0"`
	County      float64 `yaml:"county" json:"county" validate:"gt=0"`
	City        float64 `yaml:"city" json:"city" validate:"gt=0"`
	PostalCode  float64 `yaml:"postal_code" json:"postal_code" validate:"gt=0"`
	District    float64 `yaml:"district" json:"district" validate:"gt=0"`
	Street      float64 `yaml:"street" json:"street" validate:"gt=0"`
	HouseNumber float64 `yaml:"house_number" json:"house_number" validate:"gt=0"`
	// UnmatchedHouseNumber is kept for configuration compatibility. The
	// builder does not read it: boosting the "no house number" branch would
	// rank records without a number above records that match it.
	UnmatchedHouseNumber float64 `yaml:"unmatched_house_number" json:"unmatched_house_number" validate:"gt=0"`
	// WrongLanguageFactor scales name matches in a language other than the
	// requested one.
	WrongLanguageFactor float64 `yaml:"wrong_language_factor" json:"wrong_language_factor" validate:"gt=0,lte=1"`
	// DistrictAsCityFactor scales the city weight when a city value is also
	// tried as a district name.
	DistrictAsCityFactor float64 `yaml:"district_as_city_factor" json:"district_as_city_factor" validate:"gt=0,lte=1"`
}

// DefaultBoostWeights returns the tuned production weights.
func DefaultBoostWeights() BoostWeights {
	return BoostWeights{
		State:                0.1,
		County:               4.0,
		City:                 3.0,
		PostalCode:           7.0,
		District:             2.0,
		Street:               5.0,
		HouseNumber:          10.0,
		UnmatchedHouseNumber: 5.0,
		WrongLanguageFactor:  0.1,
		DistrictAsCityFactor: 0.95,
	}
}
