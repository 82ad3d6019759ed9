package game

import "fmt"

// FormatChips renders a chip count in the Indian notation players
// expect at the table: 1.2K, 4.5L, 2.1Cr.
func FormatChips(chips int) string {
	switch {
	case chips >= 10000000:
		return fmt.Sprintf("%.1fCr", float64(chips)/10000000)
	case chips >= 100000:
		return fmt.Sprintf("%.1fL", float64(chips)/100000)
	case chips >= 1000:
		return fmt.Sprintf("%.1fK", float64(chips)/1000)
	default:
		return fmt.Sprintf("%d", chips)
	}
}
