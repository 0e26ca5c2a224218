package dca

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/dca/date"
	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// this file contains functions to handle the import/export formats.
// Exported records keep their id and btcAmount; imported rows are new
// purchases and only need a date, an amount and a price.

// Format is an import/export file format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	YAML Format = "yaml"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, CSV, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown format %q, want json, csv or yaml", s)
	}
}

// row is the flat representation of a record in csv and yaml.
type row struct {
	ID        string `csv:"id" yaml:"id"`
	Date      string `csv:"date" yaml:"date"`
	Amount    string `csv:"amount" yaml:"amount"`
	Price     string `csv:"price" yaml:"price"`
	BTCAmount string `csv:"btcAmount" yaml:"btcAmount"`
}

func toRows(records []Record) []row {
	rows := make([]row, 0, len(records))
	for _, r := range records {
		rows = append(rows, row{
			ID:        string(r.id),
			Date:      r.on.String(),
			Amount:    r.amount.Decimal().String(),
			Price:     r.price.Decimal().String(),
			BTCAmount: r.quantity.Decimal().String(),
		})
	}
	return rows
}

// ExportRecords writes 'records' to 'w' in the given format.
func ExportRecords(w io.Writer, records []Record, f Format) error {
	switch f {
	case JSON:
		if records == nil {
			records = []Record{}
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot marshal records: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case CSV:
		if err := gocsv.Marshal(toRows(records), w); err != nil {
			return fmt.Errorf("cannot write csv: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRows(records)); err != nil {
			return fmt.Errorf("cannot write yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// ImportError locates an invalid row of an import.
type ImportError struct {
	Line int // 1-based data row, the csv header excluded
	Err  error
}

func (e *ImportError) Error() string { return fmt.Sprintf("row %d: %v", e.Line, e.Err) }
func (e *ImportError) Unwrap() error { return e.Err }

// ImportOrders reads purchases from a csv with at least the columns "date",
// "amount" and "price". Other columns are ignored.
func ImportOrders(r io.Reader) ([]Order, error) {
	var rows []row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("cannot read csv: %w", err)
	}
	orders := make([]Order, 0, len(rows))
	for i, rw := range rows {
		o, err := rw.order()
		if err != nil {
			return nil, &ImportError{Line: i + 1, Err: err}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (rw row) order() (Order, error) {
	on, err := date.Parse(rw.Date)
	if err != nil {
		return Order{}, err
	}
	amount, err := ParseDollars(strings.TrimSpace(rw.Amount))
	if err != nil {
		return Order{}, fmt.Errorf("invalid amount %q: %w", rw.Amount, err)
	}
	price, err := ParseDollars(strings.TrimSpace(rw.Price))
	if err != nil {
		return Order{}, fmt.Errorf("invalid price %q: %w", rw.Price, err)
	}
	return Order{Amount: amount, Price: price, Date: on}, nil
}
