package utils

import "testing"

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, substr string
		want      bool
	}{
		{"Portland Cement", "cement", true},
		{"cement", "CEMENT", true},
		{"Steel Rebar", "cement", false},
		{"anything", "", true},
	}

	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.substr); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.substr, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{65000, "65,000.00"},
		{1234567.5, "1,234,567.50"},
		{999, "999.00"},
		{-2500, "-2,500.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"Grey"}, "Grey"},
		{[]string{"Grey", "Finishing"}, "Grey and Finishing"},
		{[]string{"Grey", "Finishing", "Electrical"}, "Grey, Finishing and Electrical"},
	}

	for _, tt := range tests {
		if got := JoinNames(tt.names); got != tt.want {
			t.Errorf("JoinNames(%v) = %q, want %q", tt.names, got, tt.want)
		}
	}
}
