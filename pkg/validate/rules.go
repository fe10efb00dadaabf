package validate

import (
	"errors"
	"regexp"
	"strings"
)

// Bounds for the domain predicates.
const (
	MinAge         = 15
	MaxAge         = 99
	MinQuantity    = 1
	MaxQuantity    = 15
	MinPasswordLen = 8

	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72

	// PasswordSymbols is the fixed set a password must draw one symbol from.
	PasswordSymbols = "@$!%*?&"
)

// Messages are returned verbatim to clients.
var (
	ErrInvalidPhone    = errors.New("Phone number must be exactly 10 digits.")
	ErrInvalidAge      = errors.New("Age must be between 15 and 99.")
	ErrWeakPassword    = errors.New("Password must be at least 8 characters long, contain at least one uppercase letter, one lowercase letter, one number, and one special character.")
	ErrPasswordTooLong = errors.New("Password must not exceed 72 bytes.")
	ErrInvalidQuantity = errors.New("Quantity must be between 1 and 15.")
)

var phoneRE = regexp.MustCompile(`^[0-9]{10}$`)

// Phone reports whether s is exactly ten ASCII digits.
func Phone(s string) bool { return phoneRE.MatchString(s) }

// Age reports whether n is within [MinAge, MaxAge].
func Age(n int) bool { return n >= MinAge && n <= MaxAge }

// Quantity reports whether n is within [MinQuantity, MaxQuantity].
func Quantity(n int) bool { return n >= MinQuantity && n <= MaxQuantity }

// Password reports whether s is at least MinPasswordLen characters drawn
// from letters, digits and PasswordSymbols, with at least one of each of
// lowercase, uppercase, digit and symbol.
func Password(s string) bool {
	if len(s) < MinPasswordLen {
		return false
	}
	var lower, upper, digit, symbol bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.IndexByte(PasswordSymbols, c) >= 0:
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}

// PasswordFits reports whether s is short enough to be hashed.
func PasswordFits(s string) bool { return len(s) <= MaxPasswordBytes }
