// Package validation checks case parameters and reports warnings that do not
// stop a plan from being computed.
package validation

import (
	"fmt"

	"github.com/iwvelando/rehab-plan/pkg/constants"
)

// ValidateOutputFormat rejects any report format other than pretty or csv.
// Matching is exact.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q, expected %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}
