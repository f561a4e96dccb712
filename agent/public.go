package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/etnz/gelbook"
	"github.com/etnz/gelbook/renderer"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user records income received in foreign currencies, converted to Georgian lari (GEL)
			at the official daily rate. He is here primarily to understand his income: totals per
			year, per user, and how individual amounts were converted.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. Check the ledger first to understand which users and currencies exist.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert grounded in Google Search, for questions
// about currencies, exchange rate movements and Georgian tax rules.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a currency market analyst,
		well aware of exchange rates, monetary policy and the latest related news.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in currency markets. You can search and find anything related to
			exchange rates, central banks, monetary policy and taxation of foreign income in
			Georgia. You leverage Google Search to ground your assertions in a solid truth.
				`}}},
		},
	}
}

// NewAccountant returns the expert in charge of reading the user's ledger.
// open loads the current ledger, rates resolves official daily rates.
func NewAccountant(open func() (*gelbook.Ledger, error), rates *gelbook.RateService) *Expert {
	lib := []Function{newStatementFunc(open), newRatesFunc(rates)}

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's income ledger.
		He can report recorded transactions, yearly totals per user, and the official
		exchange rates used for the conversions.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's income ledger.
				You know how to use the Tools to extract relevant information about the user's
				recorded income. You are part of a team of experts, yours is everything about
				the ledger. Pardon their approximative language and figure out what they meant.

				Use the available tools to get information about
				  - recorded transactions and their GEL values
				  - year-to-date income per user
				  - official daily exchange rates
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func newStatementFunc(open func() (*gelbook.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Statement",
			Description: `Statement renders the user's full income ledger: every recorded
			transaction with its original amount, its GEL value and the running year-to-date
			total, plus yearly summaries per user.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted statement of the whole ledger.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := open()
			if err != nil {
				return errorResponse(id, "Statement", fmt.Errorf("could not load ledger: %w", err))
			}
			transactions := ledger.Transactions()
			ytd := gelbook.PrecalculateAllYTD(transactions)
			filter := gelbook.Filter{Asc: true}
			filter.Sort(transactions, ledger.UserName, ytd)
			statement := renderer.NewStatement(gelbook.Today(), transactions, ledger.UserName, ytd)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Statement",
				Response: map[string]any{
					"output": renderer.RenderStatement(statement),
				},
			}
		},
	}
}

func newRatesFunc(rates *gelbook.RateService) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Rates",
			Description: `Rates lists the official NBG exchange rates against the Georgian
			lari for a given date.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The date of the rates, formatted YYYY-MM-DD. Today is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the published currencies and their rates.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			day, err := parseDate(args)
			if err != nil {
				return errorResponse(id, "Rates", err)
			}
			currencies, err := rates.Rates(ctx, day)
			if err != nil {
				return errorResponse(id, "Rates", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Rates",
				Response: map[string]any{
					"output": renderer.CurrenciesMarkdown(day, currencies),
				},
			}
		},
	}
}

func parseDate(args map[string]any) (gelbook.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return gelbook.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return gelbook.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	date, err := gelbook.ParseDate(sdate)
	if err != nil {
		return gelbook.Today(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return date, nil
}
