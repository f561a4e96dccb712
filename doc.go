// Package gelbook provides the functions and types for managing a personal
// income ledger in Georgian lari. It is designed to be local-first and
// auditable, every recorded conversion keeps the official rate it was made
// with.
//
// The core functionalities include:
//   - Currency Conversion: converting foreign-currency amounts to GEL using
//     the official daily rates of the National Bank of Georgia, with a local
//     per-date cache (see RateService and the nbg subpackage).
//   - Ledger Management: recording income transactions for one or several
//     users, with validation and a self-healing persisted state.
//   - Year-To-Date Aggregation: deriving running income totals per user and
//     calendar year from the transactions, never storing them.
//   - Filtering and Sorting: a session view state over the ledger (Filter)
//     with conjunctive predicates and stable sorting.
//   - Import/Export: a CSV interchange format that merges without creating
//     duplicates, keyed by the transaction creation timestamp.
//
// This package serves as the foundational logic for the `gelbook`
// command-line tool.
package gelbook
