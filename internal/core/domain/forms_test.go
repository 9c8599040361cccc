package domain_test

import (
	"testing"

	"github.com/greenmart/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmissionValidate(t *testing.T) {
	valid := domain.ContactSubmission{
		Name:    "Alex Green",
		Email:   "alex@example.com",
		Phone:   "+7 (900) 123-45-67",
		Subject: "Order question",
		Message: "Where is my bamboo brush?",
	}

	t.Run("ValidSubmission", func(t *testing.T) {
		assert.Nil(t, valid.Validate())
	})

	t.Run("PhoneIsOptional", func(t *testing.T) {
		s := valid
		s.Phone = ""
		assert.Nil(t, s.Validate())
	})

	t.Run("ThreeInvalidFields", func(t *testing.T) {
		s := domain.ContactSubmission{
			Name:    "A",
			Email:   "x",
			Subject: "hello",
			Message: "short",
		}
		errs := s.Validate()
		require.Len(t, errs, 3)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "message")
	})

	t.Run("EmptySubjectBlocked", func(t *testing.T) {
		s := valid
		s.Subject = "   "
		errs := s.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs, "subject")
	})

	t.Run("BadPhoneBlocked", func(t *testing.T) {
		s := valid
		s.Phone = "call me maybe"
		errs := s.Validate()
		require.Len(t, errs, 1)
		assert.Contains(t, errs, "phone")
	})
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"alex.green@shop.example.com", true},
		{"x", false},
		{"", false},
		{"a@b", false},
		{"a b@c.de", false},
		{"  a@b.co  ", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.ValidEmail(tc.email), "email %q", tc.email)
	}
}
