// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// OutputFormats lists the formats the calc command can print.
var OutputFormats = []string{constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range OutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s", strings.Join(OutputFormats, ", "), format)
}
