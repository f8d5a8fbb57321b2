package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tiptime/internal/config"
	"tiptime/internal/currency"
	"tiptime/internal/tip"
)

func calcCommand(cfg *config.Config) *cobra.Command {
	var (
		in           tip.Input
		locale, code string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Prints tip, total and per-person share for one bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatterFor(cfg, locale, code)
			if err != nil {
				return err
			}

			printLines(cmd.OutOrStdout(), f, tip.Calculate(in))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.BillAmount, "bill", "", "Bill amount")
	cmd.Flags().StringVar(&in.TipPercent, "tip", "", "Tip percentage")
	cmd.Flags().StringVar(&in.PeopleCount, "people", tip.DefaultPeopleCount, "Number of people splitting the bill")
	cmd.Flags().BoolVar(&in.RoundUp, "round-up", false, "Round the tip up to a whole amount")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for formatting (default from config)")
	cmd.Flags().StringVar(&code, "currency", "", "ISO 4217 currency code (default from locale)")

	return cmd
}

// formatterFor applies flag overrides on top of the configured defaults.
func formatterFor(cfg *config.Config, locale, code string) (*currency.Formatter, error) {
	if locale == "" {
		locale = cfg.Tip.DefaultLocale
		if code == "" {
			code = cfg.Tip.DefaultCurrency
		}
	}
	return currency.NewForLocale(locale, code)
}

func printLines(w io.Writer, f *currency.Formatter, r tip.Result) {
	lines := f.Lines(r)
	fmt.Fprintln(w, lines.Tip)
	fmt.Fprintln(w, lines.Total)
	fmt.Fprintln(w, lines.PerPerson)
}
