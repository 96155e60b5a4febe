package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare domain", "example.com", "example.com"},
		{"strips www", "www.example.com", "example.com"},
		{"strips scheme and path", "https://www.example.com/complaints?page=2", "example.com"},
		{"strips port", "example.com:8080", "example.com"},
		{"reduces subdomain", "api.shop.example.com", "example.com"},
		{"turkish second level", "www.example.com.tr", "example.com.tr"},
		{"upper case folds", "EXAMPLE.COM", "example.com"},
		{"whitespace trimmed", "  example.com  ", "example.com"},
		{"empty", "", ""},
		{"no dot", "localhost", ""},
		{"spaces inside", "not a domain", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDomain(tt.in))
		})
	}
}
