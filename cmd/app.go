// Package cmd implements the CLI application to manage a GEL income ledger.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/etnz/gelbook"
	"github.com/etnz/gelbook/nbg"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&convertCmd{},
	&currenciesCmd{},
	&clearCacheCmd{},

	&txCmd{},
	&ytdCmd{},
	&commentCmd{},
	&rmTxCmd{},
	&clearCmd{},

	&usersCmd{},
	&addUserCmd{},
	&editUserCmd{},
	&rmUserCmd{},
	&resetCmd{},

	&exportCmd{},
	&importCmd{},

	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storagePath = flag.String("storage-path", envOr("GELBOOK_STORAGE", defaultStoragePath()), "Path to the ledger storage folder")
var nbgURL = flag.String("nbg-url", envOr("GELBOOK_NBG_URL", nbg.DefaultBaseURL), "Base URL of the NBG daily rates API")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gelbook"
	}
	return home + "/.gelbook"
}

// OpenLedger is the central function to open the ledger from the app storage folder.
func OpenLedger() (*gelbook.Ledger, gelbook.Storage, error) {
	storage, err := gelbook.NewDirStorage(*storagePath)
	if err != nil {
		return nil, nil, err
	}
	ledger, err := gelbook.Open(storage)
	if err != nil {
		return nil, nil, err
	}
	return ledger, storage, nil
}

// Rates returns the rate service over the app storage folder.
func Rates(storage gelbook.Storage) *gelbook.RateService {
	client := nbg.New()
	client.BaseURL = *nbgURL
	return &gelbook.RateService{Storage: storage, Fetcher: client}
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. output is not a terminal).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// confirmer returns the Confirmer for destructive commands: always-yes when
// the -y flag was given, otherwise an interactive terminal prompt.
func confirmer(yes bool) gelbook.Confirmer {
	if yes {
		return func(string) bool { return true }
	}
	reader := bufio.NewReader(os.Stdin)
	return func(prompt string) bool {
		fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
