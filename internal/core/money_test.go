package core

import "testing"

func TestParseYen(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1200", 1200, true},
		{"1,200", 1200, true},
		{" 300,000 ", 300000, true},
		{"0", 0, true},
		{"850.0", 850, true},
		{"850.00", 850, true},
		{"850.5", 0, false},
		{"-100", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"1,2,00", 1200, true},
	}
	for _, c := range cases {
		got, err := ParseYen(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseYen(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok && err == nil {
			t.Errorf("ParseYen(%q) expected error, got %d", c.in, got)
			continue
		}
		if c.ok && got != c.out {
			t.Errorf("ParseYen(%q) = %d, want %d", c.in, got, c.out)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Yen: 1}).Validate(); err != nil {
		t.Errorf("positive amount should validate: %v", err)
	}
	if err := (Money{Yen: 0}).Validate(); err == nil {
		t.Error("zero amount should not validate")
	}
	if err := (Money{Yen: -5}).Validate(); err == nil {
		t.Error("negative amount should not validate")
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{850, "850"},
		{1200, "1,200"},
		{300000, "300,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}
	for _, c := range cases {
		if got := (Money{Yen: c.in}).String(); got != c.want {
			t.Errorf("Money{%d}.String() = %q, want %q", c.in, got, c.want)
		}
	}
}
