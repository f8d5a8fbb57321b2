package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tiptime/internal/config"
	"tiptime/internal/currency"
	"tiptime/internal/tip"
)

const sessionHelp = `commands:
  bill <amount>      set the bill amount
  tip <percent>      set the tip percentage
  preset <10|15|20>  use a preset tip percentage
  people <count>     set the number of people
  round <on|off>     round the tip up
  quit               leave the session`

func sessionCommand(cfg *config.Config) *cobra.Command {
	var locale, code string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Interactive calculator that redisplays results after every change",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatterFor(cfg, locale, code)
			if err != nil {
				return err
			}
			return runSession(cmd.InOrStdin(), cmd.OutOrStdout(), f)
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for formatting (default from config)")
	cmd.Flags().StringVar(&code, "currency", "", "ISO 4217 currency code (default from locale)")

	return cmd
}

// runSession drives a tip.Form from line commands read from in. Results are
// printed by the form's subscriber, so they appear exactly once per change.
func runSession(in io.Reader, out io.Writer, f *currency.Formatter) error {
	form := tip.NewForm()
	form.Subscribe(func(r tip.Result) { printLines(out, f, r) })

	fmt.Fprintln(out, sessionHelp)
	printLines(out, f, form.Result())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "":
		case "bill":
			form.SetBillAmount(arg)
		case "tip":
			form.SetTipPercent(arg)
		case "preset":
			p, err := strconv.Atoi(arg)
			if err != nil || !tip.IsPreset(p) {
				fmt.Fprintf(out, "unknown preset %q, choose one of %v\n", arg, tip.Presets())
				continue
			}
			form.ApplyPreset(p)
		case "people":
			form.SetPeopleCount(arg)
		case "round":
			switch strings.ToLower(arg) {
			case "on", "true", "yes", "1":
				form.SetRoundUp(true)
			case "off", "false", "no", "0":
				form.SetRoundUp(false)
			default:
				fmt.Fprintf(out, "round expects on or off, got %q\n", arg)
			}
		case "help":
			fmt.Fprintln(out, sessionHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %q\n", cmd)
		}
	}

	return scanner.Err()
}
