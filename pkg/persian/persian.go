// Package persian holds the bilingual text helpers of the shop: Persian and
// Arabic-Indic digit conversion, thousands grouping, lenient numeric parsing
// of operator-typed input, and the name normalization used by the product
// name-uniqueness rule.
package persian

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldRune maps visually-equivalent character variants onto one canonical
// form. Keyboards and copied text mix the Arabic and Persian code points for
// yeh and kaf freely, so both must compare equal; digits fold to ASCII.
func foldRune(r rune) rune {
	switch {
	case r == 'ي': // ARABIC LETTER YEH -> FARSI YEH
		return 'ی'
	case r == 'ك': // ARABIC LETTER KAF -> KEHEH
		return 'ک'
	case r >= '۰' && r <= '۹': // extended arabic-indic digits
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩': // arabic-indic digits
		return '0' + (r - '٠')
	}
	return r
}

var foldTransformer = transform.Chain(norm.NFC, runes.Map(foldRune))

// NormalizeName canonicalizes a product name for duplicate comparison:
// NFC composition, look-alike letter folding, whitespace trim, lower case.
// Two names are considered duplicates when their normalized forms are equal.
func NormalizeName(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ToPersianDigits replaces ASCII digits with extended Arabic-Indic digits.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '۰' + (r - '0')
		}
		return r
	}, s)
}

// FromPersianDigits replaces Persian and Arabic-Indic digits with ASCII.
func FromPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

// FormatWithCommas groups an ASCII digit string in threes: 1234567 -> 1,234,567.
// Anything that is not a digit is dropped first.
func FormatWithCommas(s string) string {
	var digits []byte
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(d)
	}
	return b.String()
}

// StripCommas removes thousands separators.
func StripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// clean converts localized input to a plain ASCII numeric string.
func clean(s string) string {
	return strings.TrimSpace(StripCommas(FromPersianDigits(s)))
}

// ParseAmount parses a monetary value that may carry Persian or Arabic-Indic
// digits and thousands commas ("۱۲٬۵۰۰" typed as "۱۲,۵۰۰" or "12,500").
func ParseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(clean(s))
}

// ParseInt parses a whole quantity in the same lenient way as ParseAmount.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(clean(s))
}
