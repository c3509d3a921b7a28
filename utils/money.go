package utils

import "fmt"

// FormatMinorUnits renders an amount in minor currency units as a major-unit
// decimal string, e.g. 1234 -> "12.34". Integer arithmetic only.
func FormatMinorUnits(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
