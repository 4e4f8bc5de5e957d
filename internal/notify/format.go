package notify

import (
	"fmt"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

var bookingTypeLabels = map[string]string{
	"private_class":  "کلاس خصوصی",
	"placement_test": "تعیین سطح",
	"consultation":   "مشاوره",
}

// JalaliDate renders t as yyyy/mm/dd in the Persian calendar.
func JalaliDate(t time.Time) string {
	pt := ptime.New(t)
	return persianDigits.Replace(fmt.Sprintf("%04d/%02d/%02d", pt.Year(), int(pt.Month()), pt.Day()))
}

// Clock12 renders t as h:mm with the Persian AM/PM marker.
func Clock12(t time.Time) string {
	h := t.Hour()
	suffix := "ق.ظ"
	if h >= 12 {
		suffix = "ب.ظ"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return persianDigits.Replace(fmt.Sprintf("%d:%02d", h, t.Minute())) + " " + suffix
}

// BookingText is the operator message for a new booking. start must
// already be in the display location.
func BookingText(bookingType string, start time.Time, phone, notes string) string {
	label, ok := bookingTypeLabels[bookingType]
	if !ok {
		label = bookingType
	}

	var b strings.Builder
	fmt.Fprintf(&b, "رزرو جدید: %s\n", label)
	fmt.Fprintf(&b, "تاریخ: %s\n", JalaliDate(start))
	fmt.Fprintf(&b, "ساعت: %s\n", Clock12(start))
	fmt.Fprintf(&b, "شماره تماس: %s", phone)
	if notes = strings.TrimSpace(notes); notes != "" {
		fmt.Fprintf(&b, "\nتوضیحات: %s", notes)
	}
	return b.String()
}
