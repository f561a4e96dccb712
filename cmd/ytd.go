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

type ytdCmd struct {
	user string
	year int
}

func (*ytdCmd) Name() string     { return "ytd" }
func (*ytdCmd) Synopsis() string { return "show year-to-date income per user" }
func (*ytdCmd) Usage() string {
	return `gelbook ytd [-user <id>] [-year <year>]

  Shows the yearly income totals, one line per user and year. Totals are
  always derived from the recorded transactions.
`
}

func (p *ytdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.user, "user", gelbook.All, "Only this user's totals.")
	f.IntVar(&p.year, "year", 0, "Only this year (defaults to all years).")
}

func (p *ytdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter := gelbook.NewFilter()
	filter.UserID = p.user
	if p.year != 0 {
		filter.From = gelbook.NewDate(p.year, 1, 1)
		filter.To = gelbook.NewDate(p.year, 12, 31)
	}

	all := ledger.Transactions()
	ytd := gelbook.PrecalculateAllYTD(all)
	listed := filter.Apply(all)
	filter.Sort(listed, ledger.UserName, ytd)

	statement := renderer.NewStatement(gelbook.Today(), listed, ledger.UserName, ytd)
	printMarkdown(renderer.YTDMarkdown(statement.Summaries))
	return subcommands.ExitSuccess
}
