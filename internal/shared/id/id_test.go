package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTicketNumber_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		number := NewTicketNumber()
		assert.True(t, IsTicketNumber(number), "generated number %q does not match format", number)
	}
}

func TestIsTicketNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"TICKET-1A2B3C4D", true},
		{"TICKET-00000000", true},
		{"TICKET-1a2b3c4d", false},
		{"TICKET-1A2B3C4", false},
		{"TICKET-1A2B3C4D5", false},
		{"RP-0001", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsTicketNumber(tt.input), "input %q", tt.input)
	}
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "RP-0001", FormatOrderNumber(1))
	assert.Equal(t, "RP-0042", FormatOrderNumber(42))
	assert.Equal(t, "RP-9999", FormatOrderNumber(9999))
	assert.Equal(t, "RP-10000", FormatOrderNumber(10000))
}
