package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minNameLen    = 2
	minMessageLen = 10
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+\-\s()]{7,20}$`)
)

// FieldErrors maps a form field name to its human-readable error message.
type FieldErrors map[string]string

type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Normalize trims surrounding whitespace from every field.
func (s ContactSubmission) Normalize() ContactSubmission {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	return s
}

// Validate checks every field and returns the errors of all invalid ones.
// An empty result means the submission may proceed. Phone is optional:
// it is only checked when present.
func (s ContactSubmission) Validate() FieldErrors {
	s = s.Normalize()
	errs := make(FieldErrors)

	if utf8.RuneCountInString(s.Name) < minNameLen {
		errs["name"] = "name must be at least 2 characters"
	}
	if !ValidEmail(s.Email) {
		errs["email"] = "enter a valid email address"
	}
	if s.Phone != "" && !phoneRe.MatchString(s.Phone) {
		errs["phone"] = "enter a valid phone number"
	}
	if s.Subject == "" {
		errs["subject"] = "subject is required"
	}
	if utf8.RuneCountInString(s.Message) < minMessageLen {
		errs["message"] = "message must be at least 10 characters"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}
