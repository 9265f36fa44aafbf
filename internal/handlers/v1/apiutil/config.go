package apiutil

import "github.com/danielgtaylor/huma/v2"

const (
	apiTitle   = "Spend Tracker API"
	apiVersion = "1.0.0"
)

// NewConfig returns the Huma config shared by the server and handler tests.
// Response bodies are written as-is, without the `$schema` link field.
func NewConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.CreateHooks = nil
	config.Info.Description = "Tracks spending transactions and monthly category budgets."
	return config
}
