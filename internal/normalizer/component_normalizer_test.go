package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr(s string) *string { return &s }

func TestComponentNormalizer_Clean(t *testing.T) {
	n := NewComponentNormalizer(zap.NewNop())

	testCases := []struct {
		name     string
		input    *string
		expected *string
	}{
		{name: "absent", input: nil, expected: nil},
		{name: "blank", input: ptr("  \t "), expected: nil},
		{name: "trim", input: ptr("  Berlin "), expected: ptr("Berlin")},
		{name: "collapse", input: ptr("Unter  den\tLinden"), expected: ptr("Unter den Linden")},
		{name: "postcode", input: ptr("AB1   2CD"), expected: ptr("AB1 2CD")},
		// "u" followed by a combining diaeresis composes to "ü".
		{name: "nfc", input: ptr("Mu\u0308nchen"), expected: ptr("M\u00fcnchen")},
		{name: "keeps diacritics", input: ptr("Hồ Chí Minh"), expected: ptr("Hồ Chí Minh")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Clean(tc.input)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.expected, *got)
		})
	}
}

func TestComponentNormalizer_CountryCode(t *testing.T) {
	n := NewComponentNormalizer(zap.NewNop())

	testCases := []struct {
		name     string
		input    *string
		expected *string
	}{
		{name: "absent", input: nil, expected: nil},
		{name: "blank", input: ptr(""), expected: nil},
		{name: "lower case", input: ptr("de"), expected: ptr("DE")},
		{name: "padded", input: ptr(" de "), expected: ptr("DE")},
		{name: "upper case", input: ptr("VN"), expected: ptr("VN")},
		{name: "alpha-3", input: ptr("DEU"), expected: nil},
		{name: "digit", input: ptr("d1"), expected: nil},
		{name: "unassigned", input: ptr("XX"), expected: nil},
		{name: "unassigned lower case", input: ptr("zz"), expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := n.CountryCode(tc.input)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.expected, *got)
		})
	}
}
