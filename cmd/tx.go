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

type txCmd struct {
	user     string
	currency string
	from     string
	to       string
	sort     string
	asc      bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `gelbook tx [-user <id>] [-c <currency>] [-from <date>] [-to <date>] [-sort <column>] [-asc]

  Lists transactions, with options for filtering and sorting. Columns are
  date, user, currency, amount, gel and ytd. The default order is by date,
  newest first.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.user, "user", gelbook.All, "Only this user's transactions.")
	f.StringVar(&p.currency, "c", gelbook.All, "Only transactions in this currency.")
	f.StringVar(&p.from, "from", "", "Only transactions on or after this date.")
	f.StringVar(&p.to, "to", "", "Only transactions on or before this date.")
	f.StringVar(&p.sort, "sort", "date", "Sort column (date, user, currency, amount, gel, ytd).")
	f.BoolVar(&p.asc, "asc", false, "Sort ascending instead of descending.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := gelbook.NewFilter()
	filter.UserID = p.user
	filter.CurrencyCode = p.currency
	filter.Asc = p.asc
	if filter.Column, err = gelbook.ParseSortColumn(p.sort); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if p.from != "" {
		if filter.From, err = gelbook.ParseDate(p.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if p.to != "" {
		if filter.To, err = gelbook.ParseDate(p.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	all := ledger.Transactions()
	ytd := gelbook.PrecalculateAllYTD(all)
	listed := filter.Apply(all)
	filter.Sort(listed, ledger.UserName, ytd)

	var rows []renderer.TransactionRow
	for _, tx := range listed {
		rows = append(rows, renderer.NewTransactionRow(tx, ledger.UserName, ytd))
	}
	printMarkdown(renderer.TransactionsMarkdown("Transactions", rows))
	return subcommands.ExitSuccess
}
