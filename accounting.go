package dca

import (
	"slices"

	"github.com/etnz/dca/date"
)

// This file contains the stateless accounting functions. They are cheap and
// meant to be recomputed from the latest records and price on every view.

// Snapshot summarizes the whole portfolio valued at a given price.
type Snapshot struct {
	Invested   Money    // sum of amounts spent
	Quantity   Quantity // sum of bitcoin acquired
	Value      Money    // Quantity valued at the current price
	Profit     Money    // Value - Invested
	ProfitRate Percent  // Profit / Invested, 0 when nothing is invested
}

// NewSnapshot computes the portfolio totals of 'records' valued at 'price'.
func NewSnapshot(records []Record, price Money) Snapshot {
	invested, quantity := totals(records)
	value := price.Mul(quantity)
	profit := value.Sub(invested)

	var rate Percent
	if !invested.IsZero() {
		rate = profit.Rate(invested)
	}
	return Snapshot{
		Invested:   invested,
		Quantity:   quantity,
		Value:      value,
		Profit:     profit,
		ProfitRate: rate,
	}
}

// totals returns the sum of amounts and the sum of quantities.
func totals(records []Record) (invested Money, quantity Quantity) {
	invested = Dollars(0)
	quantity = Q(0)
	for _, r := range records {
		invested = invested.Add(r.amount)
		quantity = quantity.Add(r.quantity)
	}
	return invested, quantity
}

// Valuation is the value of a single record at a given price.
type Valuation struct {
	Value      Money
	Profit     Money
	ProfitRate Percent
}

// Valuate values a single record at 'price'.
func Valuate(r Record, price Money) Valuation {
	value := price.Mul(r.quantity)
	profit := value.Sub(r.amount)
	// a record amount is always positive.
	return Valuation{
		Value:      value,
		Profit:     profit,
		ProfitRate: profit.Rate(r.amount),
	}
}

// AverageCost returns the average price paid per bitcoin, weighted by amount.
// It is zero when no bitcoin has been acquired.
func AverageCost(records []Record) Money {
	invested, quantity := totals(records)
	if quantity.IsZero() {
		return Dollars(0)
	}
	return invested.Div(quantity)
}

// MonthStat accumulates the purchases of a calendar month.
type MonthStat struct {
	Amount   Money
	Quantity Quantity
	Count    int
}

// AverageCost is the average price paid per bitcoin during the month.
func (s MonthStat) AverageCost() Money {
	if s.Quantity.IsZero() {
		return Dollars(0)
	}
	return s.Amount.Div(s.Quantity)
}

// MonthlyRollup groups records by the year and month of their date, keyed "YYYY-MM".
func MonthlyRollup(records []Record) map[string]MonthStat {
	months := make(map[string]MonthStat)
	for _, r := range records {
		key := r.on.MonthKey()
		s, ok := months[key]
		if !ok {
			s = MonthStat{Amount: Dollars(0), Quantity: Q(0)}
		}
		s.Amount = s.Amount.Add(r.amount)
		s.Quantity = s.Quantity.Add(r.quantity)
		s.Count++
		months[key] = s
	}
	return months
}

// CostAnalysis compares the current price with the average cost.
type CostAnalysis struct {
	Average  Money
	Current  Money
	Diff     Money   // Current - Average
	DiffRate Percent // Diff / Average, 0 when Average is 0
}

// AboveCost reports whether the current price is at or above the average cost.
func (c CostAnalysis) AboveCost() bool { return !c.Diff.IsNegative() }

// NewCostAnalysis compares 'price' with the average cost of 'records'.
func NewCostAnalysis(records []Record, price Money) CostAnalysis {
	average := AverageCost(records)
	diff := price.Sub(average)
	var rate Percent
	if !average.IsZero() {
		rate = diff.Rate(average)
	}
	return CostAnalysis{Average: average, Current: price, Diff: diff, DiffRate: rate}
}

// ChartPoint is one point of the price trend chart.
type ChartPoint struct {
	Date    date.Date
	Price   Money
	Average Money
}

// PriceChart returns the observations in chronological order, each with the
// average cost line. 'observations' is not modified.
func PriceChart(observations []Observation, average Money) []ChartPoint {
	sorted := slices.Clone(observations)
	slices.SortStableFunc(sorted, func(a, b Observation) int { return a.Date.Compare(b.Date) })

	points := make([]ChartPoint, 0, len(sorted))
	for _, o := range sorted {
		points = append(points, ChartPoint{Date: o.Date, Price: o.Price, Average: average})
	}
	return points
}

// Estimate returns the bitcoin 'amount' buys at 'price', or zero when either
// is not positive.
func Estimate(amount, price Money) Quantity {
	if !amount.IsPositive() || !price.IsPositive() {
		return Q(0)
	}
	return amount.DivPrice(price)
}
