package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/etnz/gelbook"
)

type convertCmd struct {
	date     string
	currency string
	save     bool
	user     string
	comment  string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount to GEL at the official daily rate" }
func (*convertCmd) Usage() string {
	return `gelbook convert [-d <date>] [-c <currency>] [-save [-user <id>] [-comment <text>]] <amount>

  Converts an amount to GEL using the official NBG rate for the date.
  With -save, the conversion is recorded in the ledger as income.

Usage Examples:
$ gelbook convert -d 2025-01-15 -c USD 100
$ gelbook convert -c EUR -save -user user -comment "consulting" 200
`
}

func (p *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the conversion (defaults to today).")
	f.StringVar(&p.currency, "c", "USD", "ISO-4217 currency code of the amount.")
	f.BoolVar(&p.save, "save", false, "Record the conversion in the ledger.")
	f.StringVar(&p.user, "user", gelbook.DefaultUserID, "User receiving the income (with -save).")
	f.StringVar(&p.comment, "comment", "", "Optional comment (with -save).")
}

func (p *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	if !gelbook.ValidAmount(amount) {
		fmt.Fprintf(os.Stderr, "Error: amount must be positive and at most %s.\n", gelbook.MaxAmount)
		return subcommands.ExitUsageError
	}
	day, err := gelbook.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	if !gelbook.ValidDate(day) {
		fmt.Fprintf(os.Stderr, "Error: date %s is outside the supported range.\n", day)
		return subcommands.ExitFailure
	}

	ledger, storage, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	currency, err := Rates(storage).Currency(ctx, day, p.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	converted := gelbook.ConvertToGEL(amount, currency)
	fmt.Printf("%s %s = %s GEL (rate %s on %s)\n",
		gelbook.FormatAmount(amount), currency.Code,
		gelbook.FormatAmount(converted),
		gelbook.FormatRate(currency.Rate, currency.Quantity), day)

	if !p.save {
		return subcommands.ExitSuccess
	}

	tx := gelbook.NewTransaction(p.user, day, currency, amount)
	tx.Comment = p.comment
	if err := ledger.AddTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded income for %q.\n", ledger.UserName(p.user))
	return subcommands.ExitSuccess
}
