package dca

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/dca/date"
)

// ErrInvalidRecord is returned when a purchase cannot be recorded.
var ErrInvalidRecord = errors.New("invalid record")

// Ledger holds the purchases in the order they were recorded, and the known
// price observations, at most one per day.
//
// The insertion order is the canonical order, views sort on their own copy.
type Ledger struct {
	records      []Record
	observations []Observation
	newID        func() ID
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		records:      make([]Record, 0),
		observations: make([]Observation, 0),
		newID:        NewID,
	}
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Add records a purchase of 'amount' at 'price' on day 'on' and returns the new record.
//
// It also observes 'price' on 'on' unless a price is already known for that day.
func (l *Ledger) Add(amount, price Money, on date.Date) (Record, error) {
	var errs error
	if !amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("amount must be positive, got %v", amount.Decimal()))
	}
	if !price.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("price must be positive, got %v", price.Decimal()))
	}
	if on.IsZero() {
		errs = errors.Join(errs, errors.New("date is required"))
	}
	if errs != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, errs)
	}

	r := NewRecord(l.uniqueID(), amount, price, on)
	l.records = append(l.records, r)
	l.Observe(on, price)
	return r, nil
}

// uniqueID draws identifiers until one is not in use.
func (l *Ledger) uniqueID() ID {
	for {
		id := l.newID()
		if _, exists := l.Record(id); !exists {
			return id
		}
	}
}

// Observe records the price for a day. The first price observed for a day
// wins, later ones are dropped. It returns whether the observation was kept.
func (l *Ledger) Observe(on date.Date, price Money) bool {
	if slices.ContainsFunc(l.observations, func(o Observation) bool { return o.Date == on }) {
		return false
	}
	l.observations = append(l.observations, Observation{Date: on, Price: price})
	return true
}

// Delete removes the record with this id, and reports whether there was one.
//
// Observations are left untouched.
func (l *Ledger) Delete(id ID) bool {
	i := slices.IndexFunc(l.records, func(r Record) bool { return r.id == id })
	if i < 0 {
		return false
	}
	l.records = slices.Delete(l.records, i, i+1)
	return true
}

// Record returns the record with this id.
func (l *Ledger) Record(id ID) (Record, bool) {
	i := slices.IndexFunc(l.records, func(r Record) bool { return r.id == id })
	if i < 0 {
		return Record{}, false
	}
	return l.records[i], true
}

// Records returns a copy of all records in insertion order.
func (l *Ledger) Records() []Record { return slices.Clone(l.records) }

// Observations returns a copy of all observations in insertion order.
func (l *Ledger) Observations() []Observation { return slices.Clone(l.observations) }

// restore appends previously persisted records and observations, keeping
// their order and identifiers.
//
// A record whose id is already in the ledger is skipped, and returned in
// 'dropped'.
func (l *Ledger) restore(records []Record, observations []Observation) (dropped []Record) {
	for _, r := range records {
		if _, exists := l.Record(r.id); exists {
			dropped = append(dropped, r)
			continue
		}
		l.records = append(l.records, r)
	}
	for _, o := range observations {
		l.Observe(o.Date, o.Price)
	}
	return dropped
}
