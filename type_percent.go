package dca

import "fmt"

// Percent is a ratio expressed in percents, 12.5 means 12.5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString prints the percent with a sign, "+0.00%" is printed as "0.00%".
func (p Percent) SignedString() string {
	if p > 0 {
		return fmt.Sprintf("%+.2f%%", p)
	}
	return p.String()
}
