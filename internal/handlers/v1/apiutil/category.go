package apiutil

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/category"
)

// CategoryName is a category as rendered in responses. Request bodies keep
// plain strings so unknown values reach the service's validation message.
type CategoryName string

func NewCategoryName(c category.Category) CategoryName {
	return CategoryName(c)
}

// Schema advertises the known categories as an enum.
func (CategoryName) Schema(huma.Registry) *huma.Schema {
	names := category.Names()
	enum := make([]any, len(names))
	for i, name := range names {
		enum[i] = name
	}
	return &huma.Schema{Type: huma.TypeString, Enum: enum}
}
