package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestAddressComponents_MoreDetails(t *testing.T) {
	testCases := []struct {
		name                             string
		components                       AddressComponents
		state, county, district, isEmpty bool
	}{
		{
			name:       "empty",
			components: AddressComponents{},
			isEmpty:    true,
		},
		{
			name:       "state only",
			components: AddressComponents{State: ptr("Bayern")},
		},
		{
			name:       "county below state",
			components: AddressComponents{State: ptr("Bayern"), County: ptr("Oberallgäu")},
			state:      true,
		},
		{
			name:       "postcode below county",
			components: AddressComponents{County: ptr("Oberallgäu"), PostCode: ptr("87561")},
			state:      true,
			county:     true,
		},
		{
			name:       "house number without street",
			components: AddressComponents{District: ptr("Mitte"), HouseNumber: ptr("12")},
			state:      true,
			county:     true,
			district:   true,
		},
		{
			name:       "country code alone is not a detail",
			components: AddressComponents{CountryCode: ptr("de")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.isEmpty, tc.components.IsEmpty())
			assert.Equal(t, tc.state, tc.components.StateHasMoreDetails())
			assert.Equal(t, tc.county, tc.components.CountyHasMoreDetails())
			assert.Equal(t, tc.district, tc.components.DistrictHasMoreDetails())
		})
	}
}
