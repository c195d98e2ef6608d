package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

// MaxEmailLength is the longest accepted address in characters, measured
// after trimming.
const MaxEmailLength = 255

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated, normalized (trimmed, lower-cased) address.
// The zero value is not a valid Email.
type Email struct {
	value string
}

// NewEmail validates and normalizes raw.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return Email{}, domain.NewValidationError("email", domain.MsgRequired)
	case !emailPattern.MatchString(v):
		return Email{}, domain.NewValidationError("email", "invalid format")
	case utf8.RuneCountInString(v) > MaxEmailLength:
		return Email{}, domain.NewValidationError("email", "must be at most 255 characters")
	}
	return Email{value: strings.ToLower(v)}, nil
}

// String returns the normalized address.
func (e Email) String() string { return e.value }

// Equals reports whether both addresses normalize to the same string.
func (e Email) Equals(other Email) bool { return e.value == other.value }
