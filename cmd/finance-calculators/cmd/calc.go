package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iwvelando/finance-calculators/internal/catalog"
	"github.com/iwvelando/finance-calculators/pkg/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/internal/output"
	"github.com/iwvelando/finance-calculators/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCalcCommand(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "calc <calculator> [field=value ...]",
		Short: "Run one calculator with form-style fields",
		Long: fmt.Sprintf(`Run a calculator with the same fields its web form submits.

Calculators: %s

Examples:
  finance-calculators calc stock-return buy_price=10000 sell_price=12000 quantity=10
  finance-calculators calc loan-interest loan_amount=10000000 interest_rate=5 loan_term=1 repayment_type=equal_principal`,
			strings.Join(catalog.ImplementedNames(), ", ")),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: catalog.ImplementedNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}
			if err := a.load(); err != nil {
				return err
			}
			defer a.sync()

			calc, ok := catalog.Lookup(args[0])
			if !ok || !calc.Implemented() {
				return fmt.Errorf("unknown calculator %q, expected one of %s", args[0], strings.Join(catalog.ImplementedNames(), ", "))
			}

			values, err := parseFields(args[1:])
			if err != nil {
				return err
			}

			view, err := calc.Compute(values)
			if err != nil {
				var vErr *calculator.ValidationError
				if errors.As(err, &vErr) {
					a.logger.Debug("rejected calculator input",
						zap.String("op", "cmd.calc"),
						zap.String("calculator", calc.Name),
						zap.String("field", vErr.Field),
						zap.String("reason", vErr.Reason),
					)
					return fmt.Errorf("%s (%s: %s)", calculator.ErrValidation, vErr.Field, vErr.Reason)
				}
				return err
			}

			return output.Write(cmd.OutOrStdout(), outputFormat, calc.Title, view)
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output-format", constants.OutputFormatPretty,
		"output format: "+strings.Join(validation.OutputFormats, ", "))
	return cmd
}

// parseFields turns field=value arguments into form values. Repeating a field
// keeps the first value, matching how a form is read.
func parseFields(args []string) (url.Values, error) {
	values := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		values.Add(key, value)
	}
	return values, nil
}
