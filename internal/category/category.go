package category

import (
	"errors"
	"fmt"
)

// Category is a spending classification shared by transactions and budgets.
type Category string

const (
	Food           Category = "Food"
	Shopping       Category = "Shopping"
	Transportation Category = "Transportation"
	Events         Category = "Events"
	Recurring      Category = "Recurring"
	Services       Category = "Services"
	Travel         Category = "Travel"
)

// Default is used when a transaction is created without a category.
const Default = Recurring

var ErrUnknown = errors.New("unknown category")

// All lists every category in display order.
var All = []Category{Food, Shopping, Transportation, Events, Recurring, Services, Travel}

func (c Category) Valid() bool {
	for _, known := range All {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Parse converts s into a Category. An empty string yields Default.
func Parse(s string) (Category, error) {
	if s == "" {
		return Default, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: `%s` is not a valid enum value", ErrUnknown, s)
	}
	return c, nil
}

// Names returns the category values as plain strings, used for response schema enums.
func Names() []string {
	names := make([]string, len(All))
	for i, c := range All {
		names[i] = string(c)
	}
	return names
}
