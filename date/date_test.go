package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2024-01-05", New(2024, time.January, 5), false},
		{"2024-1-5", New(2024, time.January, 5), false},
		{" 2024-02-01 ", New(2024, time.February, 1), false},
		{"0d", Today(), false},
		{"-1d", Today().Add(-1), false},
		{"+2w", Today().Add(14), false},
		{"2024-13-01", Date{}, true},
		{"yesterday", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	for _, in := range []string{"2024-01-05", "2024-01-20", "2024-01-31"} {
		if got := MustParse(in).MonthKey(); got != "2024-01" {
			t.Errorf("MustParse(%q).MonthKey() = %q, want %q", in, got, "2024-01")
		}
	}
}

func TestNew_Normalizes(t *testing.T) {
	if got, want := New(2024, time.March, 0), New(2024, time.February, 29); got != want {
		t.Errorf("New(2024, March, 0) = %v, want %v", got, want)
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2024, time.January, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-01-05"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2024-01-05"`)
	}
	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("Unmarshal() = %v, want %v", got, d)
	}
	for _, invalid := range []string{`"not a date"`, `"0d"`, `"-1d"`, `"2024-1-5"`} {
		if err := json.Unmarshal([]byte(invalid), &got); err == nil {
			t.Errorf("Unmarshal(%s) error = nil, want error", invalid)
		}
	}
}

func TestDate_Compare(t *testing.T) {
	a, b := New(2024, 1, 5), New(2024, 1, 6)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare() is not consistent with Before/After")
	}
	if !(Date{}).IsZero() || a.IsZero() {
		t.Errorf("IsZero() inconsistent")
	}
}
