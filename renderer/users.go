package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/gelbook"
	"github.com/etnz/gelbook/nbg"
)

// UsersMarkdown renders the users table. counts maps a user id to the number
// of transactions it owns.
func UsersMarkdown(users []gelbook.User, counts map[string]int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Users")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"ID", "Name", "Taxpayer ID", "Transactions"},
	}
	for _, u := range users {
		table.Rows = append(table.Rows, []string{
			u.ID, u.Name, u.TaxpayerID, fmt.Sprintf("%d", counts[u.ID]),
		})
	}
	doc.Table(table)
	return doc.String()
}

// CurrenciesMarkdown renders the rates published for a day as a markdown
// table. Rates are shown per single unit, dividing out the quoted quantity.
func CurrenciesMarkdown(day gelbook.Date, currencies []nbg.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Exchange Rates on %s", day))
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Code", "Name", "Quantity", "Rate (GEL)"},
	}
	for _, c := range currencies {
		table.Rows = append(table.Rows, []string{
			c.Code,
			c.Name,
			c.Quantity.String(),
			gelbook.FormatRate(c.Rate, c.Quantity),
		})
	}
	doc.Table(table)
	return doc.String()
}
