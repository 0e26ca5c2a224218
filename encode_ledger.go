package dca

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Persisted layout of a record:
//
//	{"id":"…","amount":500,"price":42500,"date":"2024-01-05","btcAmount":0.0117647058823529}
//
// The btcAmount is stored, and read back as is, it is never recomputed.
type jsonRecord struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Price     decimal.Decimal `json:"price"`
	Date      date.Date       `json:"date"`
	BTCAmount decimal.Decimal `json:"btcAmount"`
}

// Persisted layout of an observation: {"date":"2024-01-05","price":42500}
type jsonObservation struct {
	Date  date.Date       `json:"date"`
	Price decimal.Decimal `json:"price"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRecord{
		ID:        string(r.id),
		Amount:    r.amount.Decimal(),
		Price:     r.price.Decimal(),
		Date:      r.on,
		BTCAmount: r.quantity.Decimal(),
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var jr jsonRecord
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	if jr.ID == "" {
		return fmt.Errorf("record %s has no id", string(data))
	}
	if !jr.Amount.IsPositive() || !jr.Price.IsPositive() {
		return fmt.Errorf("record %s: amount and price must be positive", jr.ID)
	}
	if jr.Date.IsZero() {
		return fmt.Errorf("record %s has no date", jr.ID)
	}
	*r = Record{
		id:       ID(jr.ID),
		amount:   Dollars(jr.Amount),
		price:    Dollars(jr.Price),
		on:       jr.Date,
		quantity: Q(jr.BTCAmount),
	}
	return nil
}

func (o Observation) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonObservation{Date: o.Date, Price: o.Price.Decimal()})
}

func (o *Observation) UnmarshalJSON(data []byte) error {
	var jo jsonObservation
	if err := json.Unmarshal(data, &jo); err != nil {
		return err
	}
	if jo.Date.IsZero() || !jo.Price.IsPositive() {
		return fmt.Errorf("invalid price observation %s", string(data))
	}
	*o = Observation{Date: jo.Date, Price: Dollars(jo.Price)}
	return nil
}

var (
	_ json.Marshaler   = Record{}
	_ json.Unmarshaler = (*Record)(nil)
	_ json.Marshaler   = Observation{}
	_ json.Unmarshaler = (*Observation)(nil)
)
