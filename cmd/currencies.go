package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/gelbook"
	"github.com/etnz/gelbook/renderer"
)

type currenciesCmd struct {
	date string
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the official exchange rates for a date" }
func (*currenciesCmd) Usage() string {
	return `gelbook currencies [-d <date>]

  Lists every currency published by the National Bank of Georgia for the
  date, with its rate against the lari.
`
}

func (p *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the rates (defaults to today).")
}

func (p *currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := gelbook.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	_, storage, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	currencies, err := Rates(storage).Rates(ctx, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CurrenciesMarkdown(day, currencies))
	return subcommands.ExitSuccess
}

type clearCacheCmd struct{}

func (*clearCacheCmd) Name() string     { return "clear-cache" }
func (*clearCacheCmd) Synopsis() string { return "remove all locally cached daily rates" }
func (*clearCacheCmd) Usage() string {
	return `gelbook clear-cache

  Removes the cached NBG rates. Transactions keep the rate they were
  recorded with, only the local cache is cleared.
`
}

func (*clearCacheCmd) SetFlags(f *flag.FlagSet) {}

func (p *clearCacheCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, storage, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	n, err := Rates(storage).ClearCache()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d cached day(s).\n", n)
	return subcommands.ExitSuccess
}
