package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-api-tests/internal/utils"
)

const (
	minNameLength, maxNameLength               = 4, 30
	minPasswordLength, maxPasswordLength       = 6, 30
	minPhoneDigits, maxPhoneDigits             = 8, 20
	minCompanyLength, maxCompanyLength         = 4, 30
	minTitleLength, maxTitleLength             = 4, 100
	minDescriptionLength, maxDescriptionLength = 4, 1000
)

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= lo && n <= hi
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// ParseAddress also accepts "Name <a@b.c>"; only a bare address counts.
	return addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@")+1:], ".")
}

func validPhone(s string) bool {
	if len(s) < minPhoneDigits || len(s) > maxPhoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validToken(s string) bool {
	return len(s) == utils.TokenLength
}
