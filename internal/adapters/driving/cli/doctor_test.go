package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoctorCmd_Use(t *testing.T) {
	assert.Equal(t, "doctor", doctorCmd.Use)
}

func TestDoctorCmd_Short(t *testing.T) {
	assert.Equal(t, "Check the local setup", doctorCmd.Short)
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "empty", key: "", expected: "(not set)"},
		{name: "short", key: "abc", expected: "****"},
		{name: "exactly four", key: "abcd", expected: "****"},
		{name: "long", key: "sk-1234567890abcdef", expected: "****cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.key))
		})
	}
}
