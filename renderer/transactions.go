package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a transaction listing as a markdown table, in
// the given row order.
func TransactionsMarkdown(title string, rows []TransactionRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No transactions match.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "User", "Currency", "Amount", "GEL", "YTD", "Comment"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Date, r.User, r.Currency, r.Amount, r.GEL, r.YTD, r.Comment,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d transactions.", len(rows)))
	return doc.String()
}

// YTDMarkdown renders the per-user yearly income summaries as a markdown table.
func YTDMarkdown(summaries []YearSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Yearly Income")
	if len(summaries) == 0 {
		doc.PlainText("No income recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"User", "Year", "Transactions", "Total (GEL)"},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			s.User,
			fmt.Sprintf("%d", s.Year),
			fmt.Sprintf("%d", s.Transactions),
			s.TotalGEL,
		})
	}
	doc.Table(table)
	return doc.String()
}
