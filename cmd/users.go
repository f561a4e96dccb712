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

type usersCmd struct{}

func (*usersCmd) Name() string     { return "users" }
func (*usersCmd) Synopsis() string { return "list the users of the ledger" }
func (*usersCmd) Usage() string {
	return `gelbook users

  Lists every user with its transaction count.
`
}

func (*usersCmd) SetFlags(f *flag.FlagSet) {}

func (p *usersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	counts := make(map[string]int)
	for _, tx := range ledger.Transactions() {
		counts[tx.UserID]++
	}
	printMarkdown(renderer.UsersMarkdown(ledger.Users(), counts))
	return subcommands.ExitSuccess
}

type addUserCmd struct {
	name       string
	taxpayerID string
}

func (*addUserCmd) Name() string     { return "add-user" }
func (*addUserCmd) Synopsis() string { return "add a user to the ledger" }
func (*addUserCmd) Usage() string {
	return `gelbook add-user -name <name> [-taxpayer-id <id>]

  Adds a user. The taxpayer identification number is optional.
`
}

func (p *addUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Display name of the user.")
	f.StringVar(&p.taxpayerID, "taxpayer-id", "", "Taxpayer identification number.")
}

func (p *addUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	u := gelbook.NewUser(p.name, p.taxpayerID)
	if err := ledger.AddUser(u); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added user %q with id %s.\n", u.Name, u.ID)
	return subcommands.ExitSuccess
}

type editUserCmd struct {
	id         string
	name       string
	taxpayerID string
}

func (*editUserCmd) Name() string     { return "edit-user" }
func (*editUserCmd) Synopsis() string { return "edit a user's name or taxpayer id" }
func (*editUserCmd) Usage() string {
	return `gelbook edit-user -id <user_id> [-name <name>] [-taxpayer-id <id>]

  Changes the display name and/or taxpayer id of a user.
`
}

func (p *editUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "User to edit.")
	f.StringVar(&p.name, "name", "", "New display name (kept if empty).")
	f.StringVar(&p.taxpayerID, "taxpayer-id", "", "New taxpayer id (kept if empty).")
}

func (p *editUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	u, ok := ledger.User(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no user %q.\n", p.id)
		return subcommands.ExitFailure
	}
	if p.name != "" {
		u.Name = p.name
	}
	if p.taxpayerID != "" {
		u.TaxpayerID = p.taxpayerID
	}
	if err := ledger.UpdateUser(u); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type rmUserCmd struct {
	id  string
	yes bool
}

func (*rmUserCmd) Name() string     { return "rm-user" }
func (*rmUserCmd) Synopsis() string { return "delete a user and its transactions" }
func (*rmUserCmd) Usage() string {
	return `gelbook rm-user -id <user_id> [-y]

  Deletes a user and every transaction it owns. The built-in default user
  and the last remaining user cannot be deleted.
`
}

func (p *rmUserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "User to delete.")
	f.BoolVar(&p.yes, "y", false, "Do not ask for confirmation.")
}

func (p *rmUserCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.DeleteUser(p.id, confirmer(p.yes)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all users and all transactions" }
func (*resetCmd) Usage() string {
	return `gelbook reset [-y]

  Resets the ledger: every user and every transaction is deleted and a
  fresh default user is created.
`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.yes, "y", false, "Do not ask for confirmation.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.DeleteAllUsers(confirmer(p.yes)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Ledger reset.")
	return subcommands.ExitSuccess
}
