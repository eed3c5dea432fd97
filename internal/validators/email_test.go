package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"lucia@example.com", true},
		{"tech.lead+repairs@shop.com.br", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"", false},
		{"spaced name@example.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsEmailValid(tc.email), tc.email)
	}
}
