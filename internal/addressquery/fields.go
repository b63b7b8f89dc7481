package addressquery

// Field names of the address index.
const (
	FieldCountryCode = "countrycode"
	FieldState       = "state"
	FieldCounty      = "county"
	FieldCity        = "city"
	FieldDistrict    = "district"
	FieldPostCode    = "postcode"
	FieldStreet      = "street"
	FieldHouseNumber = "housenumber"
	FieldObjectType  = "object_type"
	FieldName        = "name"
)

const collectorSuffix = "_collector"

// collectorField is the phrase-tolerant copy of an address text field.
func collectorField(field string) string {
	return field + collectorSuffix
}

// nameField is the raw per-language name of a record, e.g. name.de.raw.
func nameField(lang string) string {
	return FieldName + "." + lang + ".raw"
}
