package dca

import (
	"github.com/etnz/dca/date"
	"github.com/google/uuid"
)

// ID identifies a Record. It is opaque, derived from the creation time, and
// never reused within a Ledger.
type ID string

// NewID returns a fresh time ordered identifier (UUIDv7).
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// the random source failed, a random v4 is still unique.
		return ID(uuid.NewString())
	}
	return ID(id.String())
}

// Record is a single bitcoin purchase: the amount spent, the unit price paid
// and the day of the purchase.
//
// A Record is immutable, its Quantity is computed once when it is created.
type Record struct {
	id       ID
	amount   Money
	price    Money
	on       date.Date
	quantity Quantity
}

// NewRecord creates a Record and computes the quantity acquired as amount/price.
//
// NewRecord does not validate its input, see Order.Validate.
func NewRecord(id ID, amount, price Money, on date.Date) Record {
	return Record{
		id:       id,
		amount:   amount,
		price:    price,
		on:       on,
		quantity: amount.DivPrice(price),
	}
}

func (r Record) ID() ID             { return r.id }
func (r Record) Amount() Money      { return r.amount }
func (r Record) Price() Money       { return r.price }
func (r Record) Date() date.Date    { return r.on }
func (r Record) Quantity() Quantity { return r.quantity }

// Observation is a known bitcoin price on a given day.
type Observation struct {
	Date  date.Date
	Price Money
}
