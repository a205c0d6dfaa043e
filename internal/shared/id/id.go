// Package id generates the human-readable identifiers used by the storefront.
package id

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	// TicketNumberPrefix is the display prefix for support ticket numbers.
	TicketNumberPrefix = "TICKET-"

	// OrderNumberPrefix is the display prefix for order numbers.
	OrderNumberPrefix = "RP-"

	ticketSuffixLength = 8
)

var ticketNumberPattern = regexp.MustCompile(`^TICKET-[0-9A-F]{8}$`)

// NewTicketNumber generates a candidate ticket number of the form
// TICKET-XXXXXXXX where the suffix is 8 uppercase hex characters taken from
// a random UUID. Uniqueness is not guaranteed here; callers must check the
// candidate against existing tickets and retry on collision.
func NewTicketNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return TicketNumberPrefix + strings.ToUpper(hex[:ticketSuffixLength])
}

// IsTicketNumber reports whether s matches the ticket number format.
func IsTicketNumber(s string) bool {
	return ticketNumberPattern.MatchString(s)
}

// FormatOrderNumber formats a sequence value as a display order number,
// e.g. 1 -> "RP-0001". Sequences beyond 9999 widen naturally.
func FormatOrderNumber(seq uint64) string {
	return fmt.Sprintf("%s%04d", OrderNumberPrefix, seq)
}
