package addressquery

// ObjectType is the declared type of an address record, stored in the
// object_type field of the index.
type ObjectType int

const (
	ObjectTypeState ObjectType = iota + 1
	ObjectTypeCounty
	ObjectTypeCity
	ObjectTypeDistrict
	ObjectTypeStreet
)

var objectTypeNames = map[ObjectType]string{
	ObjectTypeState:    "state",
	ObjectTypeCounty:   "county",
	ObjectTypeCity:     "city",
	ObjectTypeDistrict: "district",
	ObjectTypeStreet:   "street",
}

// String returns the value indexed in object_type. It panics for values
// outside the enumeration, which can only come from an explicit conversion.
func (t ObjectType) String() string {
	name, ok := objectTypeNames[t]
	if !ok {
		panic("addressquery: invalid object type")
	}
	return name
}
