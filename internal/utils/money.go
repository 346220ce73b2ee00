package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatScore renders a composite score with two decimals. NaN becomes "0.00".
func FormatScore(score float64) string {
	if math.IsNaN(score) {
		return "0.00"
	}
	return strconv.FormatFloat(score, 'f', 2, 64)
}

// FormatRupee renders an amount as ₹ with Indian digit grouping (12,34,567.50).
func FormatRupee(amount float64) string {
	return formatIndian("₹", amount)
}

// FormatRupeeASCII is FormatRupee with an "Rs " prefix, for the PDF core fonts
// that have no ₹ glyph.
func FormatRupeeASCII(amount float64) string {
	return formatIndian("Rs ", amount)
}

func formatIndian(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole, frac, _ := strings.Cut(FormatMoney(amount), ".")
	return fmt.Sprintf("%s%s%s.%s", sign, symbol, groupIndian(whole), frac)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String() + "," + tail
}
