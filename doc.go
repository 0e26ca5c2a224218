// Package dca keeps track of recurring bitcoin purchases, the so called
// dollar-cost averaging.
//
// The core functionalities include:
//   - Ledger Management: recording purchases (amount spent, unit price, day)
//     in the order they are made, and the bitcoin price known for each day.
//   - Accounting: stateless functions that value the ledger at a given price:
//     totals, profit, per purchase valuation, average cost and monthly rollups.
//   - Price: fetching the current bitcoin price, with a fixed fallback price.
//   - Data Persistence: storing both lists as JSON in a key/value store,
//     without ever failing the caller.
//
// This package serves as the foundational logic for the `dca` command-line tool.
package dca
