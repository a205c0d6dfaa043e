package utils

import "fmt"

// FormatPrice formats a whole-taka amount for display, e.g. 560 -> "৳560".
// Prices in the storefront are stored in whole BDT units.
func FormatPrice(amount int64) string {
	return fmt.Sprintf("৳%d", amount)
}
