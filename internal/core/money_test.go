package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"100", 10000, true},
		{"45,5", 4550, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{"0.01", 1, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"0", 0, false},
		{"0,00", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseDecimalToCents(%q) error = %v", tc.in, err)
				continue
			}
			if got != tc.cents {
				t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.cents)
			}
		} else if err == nil {
			t.Errorf("ParseDecimalToCents(%q) expected error, got %d", tc.in, got)
		}
	}
}

func TestMoneyReais(t *testing.T) {
	if got := (Money{Cents: 4550}).Reais(); got != 45.50 {
		t.Errorf("Reais() = %v, want 45.50", got)
	}
	if got := (Money{Cents: -300}).Reais(); got != -3.0 {
		t.Errorf("Reais() = %v, want -3.0", got)
	}
}
