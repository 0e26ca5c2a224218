package dca

import (
	"context"
	"slices"
)

// Tracker is the application state: the ledger, the last known bitcoin price,
// and where both lists are persisted.
//
// Every mutation goes through the Tracker, which writes the changed lists
// through to the Persister immediately. Views only read from it.
type Tracker struct {
	ledger  *Ledger
	price   Money
	persist *Persister
}

// OpenTracker loads the persisted records and observations, an empty ledger
// if there are none or they cannot be read.
//
// The price is zero until Refresh or SetPrice is called.
func OpenTracker(p *Persister) *Tracker {
	records := []Record{}
	observations := []Observation{}
	Load(p, RecordsKey, &records)
	Load(p, ObservationsKey, &observations)

	l := NewLedger()
	for _, r := range l.restore(records, observations) {
		p.log.Errorw("duplicate record id, record skipped", "key", RecordsKey, "id", string(r.id), "date", r.on.String())
	}
	return &Tracker{ledger: l, price: Dollars(0), persist: p}
}

// Add validates the order, records it and saves both lists.
// An invalid order leaves the tracker unchanged.
func (t *Tracker) Add(o Order) (Record, error) {
	if err := o.Validate(); err != nil {
		return Record{}, err
	}
	r, err := t.ledger.Add(o.Amount, o.Price, o.Date)
	if err != nil {
		return Record{}, err
	}
	t.save()
	return r, nil
}

// Import adds all orders, or none if any of them is invalid, and saves once.
func (t *Tracker) Import(orders []Order) ([]Record, error) {
	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, &ImportError{Line: i + 1, Err: err}
		}
	}
	added := make([]Record, 0, len(orders))
	for _, o := range orders {
		r, err := t.ledger.Add(o.Amount, o.Price, o.Date)
		if err != nil {
			// already validated
			return nil, err
		}
		added = append(added, r)
	}
	if len(added) > 0 {
		t.save()
	}
	return added, nil
}

// Delete removes a record and saves the records if it existed.
func (t *Tracker) Delete(id ID) bool {
	if !t.ledger.Delete(id) {
		return false
	}
	t.persist.Save(RecordsKey, t.ledger.Records())
	return true
}

func (t *Tracker) save() {
	t.persist.Save(RecordsKey, t.ledger.Records())
	t.persist.Save(ObservationsKey, t.ledger.Observations())
}

// Refresh fetches the current price from 'src' and keeps it.
func (t *Tracker) Refresh(ctx context.Context, src PriceSource) Money {
	t.price = src.Current(ctx)
	return t.price
}

// SetPrice sets the current price.
func (t *Tracker) SetPrice(price Money) { t.price = price }

// Price returns the current price, zero until known.
func (t *Tracker) Price() Money { return t.price }

// Records returns the records in insertion order.
func (t *Tracker) Records() []Record { return t.ledger.Records() }

// Observations returns the observations in insertion order.
func (t *Tracker) Observations() []Observation { return t.ledger.Observations() }

// Record returns the record with this id.
func (t *Tracker) Record(id ID) (Record, bool) { return t.ledger.Record(id) }

// Snapshot values the portfolio at the current price.
func (t *Tracker) Snapshot() Snapshot { return NewSnapshot(t.ledger.records, t.price) }

// Analysis compares the current price with the average cost.
func (t *Tracker) Analysis() CostAnalysis { return NewCostAnalysis(t.ledger.records, t.price) }

// Monthly returns the monthly rollup of the records.
func (t *Tracker) Monthly() map[string]MonthStat { return MonthlyRollup(t.ledger.records) }

// Chart returns the price trend with the average cost line.
func (t *Tracker) Chart() []ChartPoint {
	return PriceChart(t.ledger.observations, AverageCost(t.ledger.records))
}

// Filter returns the records, in insertion order, accepted by 'keep'.
func (t *Tracker) Filter(keep func(Record) bool) []Record {
	return slices.DeleteFunc(t.ledger.Records(), func(r Record) bool { return !keep(r) })
}

// Close closes the storage.
func (t *Tracker) Close() error { return t.persist.Close() }
