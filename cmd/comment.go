package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type commentCmd struct {
	id string
}

func (*commentCmd) Name() string     { return "comment" }
func (*commentCmd) Synopsis() string { return "set the comment of a transaction" }
func (*commentCmd) Usage() string {
	return `gelbook comment -id <transaction_id> <text>...

  Replaces the comment of a transaction. An empty text clears it.
`
}

func (p *commentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Transaction to comment.")
}

func (p *commentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.UpdateComment(p.id, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type rmTxCmd struct {
	id string
}

func (*rmTxCmd) Name() string     { return "rm-tx" }
func (*rmTxCmd) Synopsis() string { return "delete a transaction" }
func (*rmTxCmd) Usage() string {
	return `gelbook rm-tx -id <transaction_id>

  Deletes a single transaction from the ledger.
`
}

func (p *rmTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Transaction to delete.")
}

func (p *rmTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.DeleteTransaction(p.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all transactions" }
func (*clearCmd) Usage() string {
	return `gelbook clear [-y]

  Deletes every transaction in the ledger. Users are kept.
`
}

func (p *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "y", false, "Do not ask for confirmation.")
}

func (p *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.ClearAllTransactions(confirmer(p.yes)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("All transactions deleted.")
	return subcommands.ExitSuccess
}
