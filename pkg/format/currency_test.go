package format

import "testing"

func TestRoundWon(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Round down", 1234.4, "1234"},
		{"Round up", 1234.6, "1235"},
		{"Tie to even down", 2.5, "2"},
		{"Tie to even up", 3.5, "4"},
		{"Negative tie", -2.5, "-2"},
		{"Large tie", 1234567.5, "1234568"},
		{"Small negative", -0.3, "0"},
		{"Zero", 0, "0"},
		{"Beyond int64", 1e20, "100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundWon(tt.input).String(); got != tt.expected {
				t.Errorf("RoundWon(%v) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWon(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0원"},
		{999, "999원"},
		{1000, "1,000원"},
		{33840, "33,840원"},
		{1234567.89, "1,234,568원"},
		{-19691.2, "-19,691원"},
		{1e20, "100,000,000,000,000,000,000원"},
		{-1e19, "-10,000,000,000,000,000,000원"},
		{4e18, "4,000,000,000,000,000,000원"},
	}

	for _, tt := range tests {
		if got := Won(tt.input); got != tt.expected {
			t.Errorf("Won(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNumber(t *testing.T) {
	if got := Number(120000); got != "120,000" {
		t.Errorf("Number(120000) = %q", got)
	}
	if got := Integer(1000000); got != "1,000,000" {
		t.Errorf("Integer(1000000) = %q", got)
	}
}

func TestManwon(t *testing.T) {
	if got := Manwon(50000000); got != "5,000만원" {
		t.Errorf("Manwon(50000000) = %q, expected 5,000만원", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{19.688, "19.69"},
		{0, "0.00"},
		{-5.5, "-5.50"},
		{6.617527, "6.62"},
	}

	for _, tt := range tests {
		if got := Percent(tt.input); got != tt.expected {
			t.Errorf("Percent(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
	if got := PercentSign(8.340909); got != "8.34%" {
		t.Errorf("PercentSign(8.340909) = %q, expected 8.34%%", got)
	}
}

func TestEcho(t *testing.T) {
	if got := Echo(4); got != "4" {
		t.Errorf("Echo(4) = %q", got)
	}
	if got := Echo(3.25); got != "3.25" {
		t.Errorf("Echo(3.25) = %q", got)
	}
}
