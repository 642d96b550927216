package application

import "github.com/dfryer1193/folio/blog/domain"

const displayDateLayout = "January 2, 2006"

// FormatDate turns a raw front matter date into a human readable one.
// Input that is not a recognized date is returned unchanged.
func FormatDate(raw string) string {
	t, err := domain.ParseDate(raw)
	if err != nil {
		return raw
	}
	return t.Format(displayDateLayout)
}
