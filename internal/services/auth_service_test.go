package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegistration() *RegisterInput {
	return &RegisterInput{
		Username: "priya_r",
		Email:    "priya@example.com",
		Password: "secret123",
		FullName: "Priya Raman",
		Phone:    "+91 98765 43210",
	}
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration(validRegistration()))

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty username", func(in *RegisterInput) { in.Username = "" }},
		{"username too long", func(in *RegisterInput) { in.Username = strings.Repeat("a", 51) }},
		{"empty email", func(in *RegisterInput) { in.Email = "" }},
		{"malformed email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"email too long", func(in *RegisterInput) { in.Email = strings.Repeat("a", 95) + "@example.com" }},
		{"password too short", func(in *RegisterInput) { in.Password = "12345" }},
		{"password too long", func(in *RegisterInput) { in.Password = strings.Repeat("x", 256) }},
		{"empty full name", func(in *RegisterInput) { in.FullName = "" }},
		{"full name too long", func(in *RegisterInput) { in.FullName = strings.Repeat("a", 101) }},
		{"empty phone", func(in *RegisterInput) { in.Phone = "" }},
		{"phone too short", func(in *RegisterInput) { in.Phone = "12345" }},
		{"phone with letters", func(in *RegisterInput) { in.Phone = "98765abc43" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegistration()
			tc.mutate(in)
			assert.Error(t, ValidateRegistration(in))
		})
	}
}
