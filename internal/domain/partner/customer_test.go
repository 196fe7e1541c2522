package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinNameParts(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{"all parts present", []string{"Anna", "Maria", "Bloom"}, "Anna Maria Bloom"},
		{"middle name missing", []string{"Anna", "", "Bloom"}, "Anna Bloom"},
		{"only last name", []string{"", "", "Bloom"}, "Bloom"},
		{"all empty", []string{"", "", ""}, ""},
		{"whitespace only parts are skipped", []string{"  ", "Anna", " "}, "Anna"},
		{"parts are trimmed", []string{" Anna ", "", " Bloom"}, "Anna Bloom"},
		{"no parts", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinNameParts(tt.parts...))
		})
	}
}

func TestCustomerDisplayName(t *testing.T) {
	c := Customer{FirstName: "Anna", MiddleName: "", LastName: "Bloom"}
	assert.Equal(t, "Anna Bloom", c.DisplayName())

	empty := Customer{}
	assert.Equal(t, "", empty.DisplayName())
}
