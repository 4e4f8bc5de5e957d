package validators

import (
	"strings"
	"unicode"
)

var digitReplacer = strings.NewReplacer(
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// NormalizePhone returns an Iranian mobile number in the local 09xxxxxxxxx
// form, or "" when the input is not one. Persian and Arabic-Indic digits,
// separators and the +98 / 0098 / 98 prefixes are accepted.
func NormalizePhone(raw string) string {
	s := digitReplacer.Replace(strings.TrimSpace(raw))

	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return ""
		}
	}
	s = b.String()

	switch {
	case strings.HasPrefix(s, "+98"):
		s = "0" + s[3:]
	case strings.HasPrefix(s, "0098"):
		s = "0" + s[4:]
	case strings.HasPrefix(s, "98") && len(s) == 12:
		s = "0" + s[2:]
	case strings.HasPrefix(s, "9") && len(s) == 10:
		s = "0" + s
	}

	if len(s) != 11 || !strings.HasPrefix(s, "09") {
		return ""
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return ""
		}
	}
	return s
}

func IsMobile(raw string) bool {
	return NormalizePhone(raw) != ""
}

// NormalizeUsername maps phone-like usernames onto their canonical mobile
// form so "+98912..." and "0912..." resolve to the same account.
func NormalizeUsername(raw string) string {
	if p := NormalizePhone(raw); p != "" {
		return p
	}
	return strings.ToLower(strings.TrimSpace(raw))
}
