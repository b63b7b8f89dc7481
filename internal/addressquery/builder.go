// Package addressquery compiles structured address components (country,
// state, county, city, district, postcode, street, house number) into a
// weighted boolean query against the address index.
//
// A builder is created per search request, fed with Add* calls and read once
// with Build. It is not safe for concurrent use.
package addressquery

import (
	"slices"
	"strings"
	"unicode"

	"github.com/address-query/internal/query"
)

// AddressQueryBuilder accumulates the clauses of a structured address query.
//
// Besides the main query it keeps the city filter: every clause that pins
// down the city context (city, postcode, county, district) is collected so
// that a house number only counts when it lies in that context.
type AddressQueryBuilder struct {
	lenient bool
	langs   LanguageContext
	weights BoostWeights

	must       []query.Query
	filter     []query.Query
	cityFilter []query.Query
}

// NewAddressQueryBuilder creates a builder. In lenient mode postcodes and
// streets are matched with edit-distance tolerance.
func NewAddressQueryBuilder(lenient bool, langs LanguageContext, weights BoostWeights) *AddressQueryBuilder {
	return &AddressQueryBuilder{
		lenient: lenient,
		langs:   langs,
		weights: weights,
	}
}

// Build returns the query accumulated so far. The returned tree does not
// share clause slices with the builder, so later additions leave it intact.
// Without any addition the result is an empty bool that matches everything.
func (b *AddressQueryBuilder) Build() query.Query {
	return query.Bool{
		Must:   slices.Clone(b.must),
		Filter: slices.Clone(b.filter),
	}
}

// AddCountryCode restricts the results to a country. Filters never score.
func (b *AddressQueryBuilder) AddCountryCode(countryCode *string) *AddressQueryBuilder {
	if countryCode == nil {
		return b
	}

	b.filter = append(b.filter, query.Term{
		Field: FieldCountryCode,
		Value: strings.ToUpper(*countryCode),
	})
	return b
}

// AddState requires the state. hasMoreDetails is set when a finer component
// was given as well.
func (b *AddressQueryBuilder) AddState(state *string, hasMoreDetails bool) *AddressQueryBuilder {
	if state == nil {
		return b
	}

	b.must = append(b.must, b.nameOrFieldQuery(FieldState, *state, b.weights.State, ObjectTypeState, hasMoreDetails))
	return b
}

// AddCounty requires the county and adds it to the city filter.
func (b *AddressQueryBuilder) AddCounty(county *string, hasMoreDetails bool) *AddressQueryBuilder {
	if county == nil {
		return b
	}

	q := b.nameOrFieldQuery(FieldCounty, *county, b.weights.County, ObjectTypeCounty, hasMoreDetails)
	b.cityFilter = append(b.cityFilter, q)
	b.must = append(b.must, q)
	return b
}

// AddDistrict requires the district and adds it to the city filter.
func (b *AddressQueryBuilder) AddDistrict(district *string, hasMoreDetails bool) *AddressQueryBuilder {
	if district == nil {
		return b
	}

	q := b.nameOrFieldQuery(FieldDistrict, *district, b.weights.District, ObjectTypeDistrict, hasMoreDetails)
	b.cityFilter = append(b.cityFilter, q)
	b.must = append(b.must, q)
	return b
}

// AddCity requires the city and adds it to the city filter.
//
// A city name is often also the name of a district, so unless a district was
// given separately the city is tried as a district too. With a street or
// district present the city only gives context and is matched against the
// address text of the records; otherwise the city record itself is looked for
// by name.
func (b *AddressQueryBuilder) AddCity(city *string, hasDistrict, hasStreet, hasPostCode bool) *AddressQueryBuilder {
	if city == nil {
		return b
	}

	var nameQuery query.Query = b.fuzzyNameQuery(*city, ObjectTypeCity, b.weights.City)
	var fieldQuery query.Query = query.MatchPhrase{
		Field: collectorField(FieldCity),
		Query: *city,
		Boost: b.weights.City,
	}

	if !hasDistrict {
		districtBoost := b.weights.DistrictAsCityFactor * b.weights.City
		nameQuery = query.Bool{
			Should: []query.Query{
				nameQuery,
				b.fuzzyNameQuery(*city, ObjectTypeDistrict, districtBoost),
			},
			MinimumShouldMatch: 1,
		}
		fieldQuery = query.Bool{
			Should: []query.Query{
				fieldQuery,
				query.MatchPhrase{
					Field: collectorField(FieldDistrict),
					Query: *city,
					Boost: districtBoost,
				},
			},
			MinimumShouldMatch: 1,
		}
	}

	var combined query.Query
	switch {
	case hasStreet || hasDistrict:
		combined = fieldQuery
	case hasPostCode:
		// A postcode can imply a district whose record carries the city only
		// in its address text, not in its name.
		combined = query.Bool{Should: []query.Query{nameQuery, fieldQuery}}
	default:
		combined = nameQuery
	}

	b.cityFilter = append(b.cityFilter, combined)
	b.must = append(b.must, combined)
	return b
}

// AddPostalCode requires the postcode and adds it to the city filter.
func (b *AddressQueryBuilder) AddPostalCode(postalCode *string) *AddressQueryBuilder {
	if postalCode == nil {
		return b
	}

	fuzziness := query.FuzzinessZero
	if b.lenient {
		fuzziness = query.FuzzinessAuto
	}

	var q query.Query
	if strings.ContainsFunc(*postalCode, unicode.IsSpace) {
		q = query.Match{
			Field:     FieldPostCode,
			Query:     *postalCode,
			Fuzziness: fuzziness,
			Boost:     b.weights.PostalCode,
		}
	} else {
		q = query.Fuzzy{
			Field:     FieldPostCode,
			Value:     *postalCode,
			Fuzziness: fuzziness,
			Boost:     b.weights.PostalCode,
		}
	}

	b.cityFilter = append(b.cityFilter, q)
	b.must = append(b.must, q)
	return b
}

// AddStreetAndHouseNumber requires the street and, when given, the house
// number. City, postcode, county and district should be added before, as
// the house number is only matched within their context.
func (b *AddressQueryBuilder) AddStreetAndHouseNumber(street, houseNumber *string) *AddressQueryBuilder {
	if street == nil {
		if houseNumber != nil {
			// Some hamlets have no street names and only number their
			// buildings. The street must be absent so that a numbered street
			// does not match by accident.
			b.must = append(b.must, query.Bool{
				MustNot: []query.Query{query.Exists{Field: FieldStreet}},
				Must: []query.Query{query.MatchPhrase{
					Field: FieldHouseNumber,
					Query: *houseNumber,
				}},
			})
		}
		return b
	}

	streetField := query.MatchPhrase{Field: collectorField(FieldStreet), Query: *street}

	var streetQuery query.Query
	if b.lenient {
		streetQuery = query.Bool{
			Should: []query.Query{
				streetField,
				b.fuzzyNameQuery(*street, ObjectTypeStreet, 0),
			},
			MinimumShouldMatch: 1,
			Boost:              b.weights.Street,
		}
	} else {
		boosted := streetField
		boosted.Boost = b.weights.Street
		streetQuery = boosted
	}

	if houseNumber != nil {
		filter := []query.Query{streetField}
		if len(b.cityFilter) > 0 {
			filter = append(filter, query.Bool{Should: slices.Clone(b.cityFilter)})
		}

		houseNumberMatch := query.Bool{
			Must: []query.Query{query.MatchPhrase{
				Field: FieldHouseNumber,
				Query: *houseNumber,
			}},
			Filter: filter,
		}
		// Records without any house number are not penalised for missing it.
		// The branch scores a constant 1 before the house number weight.
		noHouseNumber := query.Bool{
			MustNot: []query.Query{query.Exists{Field: FieldHouseNumber}},
		}

		b.must = append(b.must, query.Bool{
			Should: []query.Query{houseNumberMatch, noHouseNumber},
			Boost:  b.weights.HouseNumber,
		})
	}

	b.must = append(b.must, streetQuery)
	return b
}

// nameOrFieldQuery matches the address text of the record when the value is
// only context for a finer component, and the record name otherwise.
func (b *AddressQueryBuilder) nameOrFieldQuery(field, value string, boost float64, objectType ObjectType, hasMoreDetails bool) query.Query {
	if hasMoreDetails {
		return query.MatchPhrase{Field: collectorField(field), Query: value}
	}
	return b.fuzzyNameQuery(value, objectType, boost)
}

// fuzzyNameQuery matches the value against the names of a record of the given
// type in all supported languages. Names in other languages than the
// requested one are accepted at a reduced weight.
func (b *AddressQueryBuilder) fuzzyNameQuery(value string, objectType ObjectType, boost float64) query.Bool {
	should := make([]query.Query, 0, len(b.langs.supported))
	for _, lang := range b.langs.supported {
		weight := 1.0
		if lang != b.langs.requested {
			weight = b.weights.WrongLanguageFactor
		}
		should = append(should, query.MatchPhrase{
			Field: nameField(lang),
			Query: value,
			Boost: weight,
		})
	}

	return query.Bool{
		Should:             should,
		MinimumShouldMatch: 1,
		Filter: []query.Query{query.Term{
			Field: FieldObjectType,
			Value: objectType.String(),
		}},
		Boost: boost,
	}
}
