package core

import "testing"

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2025-01-05", "2025-01-05", true},
		{"2025/01/05", "2025-01-05", true},
		{"2025.01.05", "2025-01-05", true},
		{"01/20/2025", "2025-01-20", true},
		{"Jan 5, 2025", "2025-01-05", true},
		{"January 5, 2025", "2025-01-05", true},
		{"2025-01-05 13:45:00", "2025-01-05", true},
		{" 2025-01-05 ", "2025-01-05", true},
		{"", "", false},
		{"yesterday", "", false},
		{"2025-13-40", "", false},
	}
	for _, c := range cases {
		got, err := ParseDate(c.in)
		if c.ok && err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", c.in, err)
			continue
		}
		if !c.ok {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %v", c.in, got)
			}
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseDate(%q) = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestDateValidate(t *testing.T) {
	if err := (Date{}).Validate(); err == nil {
		t.Error("zero date should not validate")
	}
	if err := NewDate(2025, 1, 5).Validate(); err != nil {
		t.Errorf("concrete date should validate: %v", err)
	}
}
