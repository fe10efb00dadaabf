package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/dinein/pkg/validate"
)

func TestPhone(t *testing.T) {
	cases := map[string]bool{
		"1234567890":   true,
		"0000000000":   true,
		"12345":        false,
		"12345678901":  false,
		"123-456-7890": false,
		"12345 67890":  false,
		"123456789a":   false,
		"":             false,
		"١٢٣٤٥٦٧٨٩٠":   false, // non-ASCII digits
	}
	for in, want := range cases {
		assert.Equal(t, want, validate.Phone(in), "Phone(%q)", in)
	}
}

func TestAgeBoundaries(t *testing.T) {
	assert.False(t, validate.Age(14))
	assert.True(t, validate.Age(15))
	assert.True(t, validate.Age(42))
	assert.True(t, validate.Age(99))
	assert.False(t, validate.Age(100))
	assert.False(t, validate.Age(-20))
}

func TestQuantityBoundaries(t *testing.T) {
	assert.False(t, validate.Quantity(0))
	assert.True(t, validate.Quantity(1))
	assert.True(t, validate.Quantity(15))
	assert.False(t, validate.Quantity(16))
}

func TestPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"Abcdef1!", true},
		{"Zz9@Zz9@Zz9@", true},
		{"abcdefgh", false},
		{"Abcdefgh", false},
		{"Abcdefg1", false},
		{"abcdef1!", false},
		{"ABCDEF1!", false},
		{"Abc1!", false},
		{"Abcdef1#", false}, // '#' is not in the allowed symbol set
		{"Abcde f1!", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, validate.Password(tc.in), "Password(%q)", tc.in)
	}
}

func TestPasswordFits(t *testing.T) {
	assert.True(t, validate.PasswordFits("Abcdef1!"+strings.Repeat("a", 64)))
	assert.False(t, validate.PasswordFits("Abcdef1!"+strings.Repeat("a", 65)))
	// multi-byte runes count by byte
	assert.False(t, validate.PasswordFits(strings.Repeat("é", 37)))
}
