package dca

import (
	"fmt"
	"testing"

	"github.com/etnz/dca/date"
	"github.com/google/go-cmp/cmp"
)

// sequentialIDs returns an ID generator yielding "1", "2", ...
func sequentialIDs() func() ID {
	i := 0
	return func() ID {
		i++
		return ID(fmt.Sprint(i))
	}
}

// newTestLedger returns an empty ledger with predictable ids.
func newTestLedger() *Ledger {
	l := NewLedger()
	l.newID = sequentialIDs()
	return l
}

// buy is a helper to create a record from constants.
func buy(id string, amount, price float64, on string) Record {
	return NewRecord(ID(id), Dollars(amount), Dollars(price), date.MustParse(on))
}

// mustAdd adds a purchase to 'l' or fails the test.
func mustAdd(t *testing.T, l *Ledger, amount, price float64, on string) Record {
	t.Helper()
	r, err := l.Add(Dollars(amount), Dollars(price), date.MustParse(on))
	if err != nil {
		t.Fatalf("Add(%v, %v, %v) error = %v", amount, price, on, err)
	}
	return r
}

// equalRecords compares records field by field, decimals by value.
var equalRecords = cmp.Comparer(func(a, b Record) bool {
	return a.id == b.id &&
		a.amount.Equal(b.amount) &&
		a.price.Equal(b.price) &&
		a.on == b.on &&
		a.quantity.Equal(b.quantity)
})

// equalObservations compares observations, prices by value.
var equalObservations = cmp.Comparer(func(a, b Observation) bool {
	return a.Date == b.Date && a.Price.Equal(b.Price)
})
