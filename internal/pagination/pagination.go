package pagination

import (
	"math"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is the skip/limit window for one page of a listing.
type Page struct {
	Skip  int
	Limit int
	Page  int
}

// Paginate computes the window for the raw page and limit query values.
// Values that are absent, non-numeric or zero fall back to the defaults.
// Negative values are passed through untouched.
func Paginate(page, limit string) Page {
	p := ParseOrDefault(page, DefaultPage)
	l := ParseOrDefault(limit, DefaultLimit)
	return Page{
		Skip:  skip(p, l),
		Limit: l,
		Page:  p,
	}
}

// skip is (page-1)*limit, saturated at the int range.
func skip(page, limit int) int {
	n := page - 1
	if n == 0 || limit == 0 {
		return 0
	}
	if p := n * limit; p/limit == n && (limit != -1 || n != math.MinInt) {
		return p
	}
	if (n < 0) != (limit < 0) {
		return math.MinInt
	}
	return math.MaxInt
}

// TotalPages returns ceil(total/limit). A zero limit yields zero pages.
func TotalPages(total int64, limit int) int {
	if total == 0 || limit == 0 {
		return 0
	}
	l := int64(limit)
	pages := total / l
	if total%l != 0 && (total < 0) == (l < 0) {
		pages++
	}
	return int(pages)
}

// ParseOrDefault parses the integer prefix of s and returns fallback when
// there is none or it is zero.
func ParseOrDefault(s string, fallback int) int {
	v, ok := ParseIntPrefix(s)
	if !ok || v == 0 {
		return fallback
	}
	return v
}

// ParseIntPrefix reads an optionally signed run of decimal digits from the
// start of s, after leading whitespace. Anything after the digits is ignored,
// so "3abc" is 3 and "2.9" is 2. Values beyond the int range saturate.
func ParseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	if s == "" {
		return 0, false
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	digits := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}
