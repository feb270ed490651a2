// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/finance-calculators/internal/catalog"
)

// FindField finds a summary field by key in a calculator view.
// Returns a pointer to the field if found, nil otherwise.
func FindField(view catalog.View, key string) *catalog.Field {
	fields := view.Summary()
	for i := range fields {
		if fields[i].Key == key {
			return &fields[i]
		}
	}
	return nil
}
