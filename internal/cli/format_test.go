package cli

import "testing"

func TestFormatEok(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0만"},
		{186, "186만"},
		{9_999, "9,999만"},
		{10_000, "1억"},
		{41_863, "4억 1,863만"},
		{70_000, "7억"},
		{-12_500, "-1억 2,500만"},
	}
	for _, tc := range tests {
		if got := FormatEok(tc.in); got != tc.want {
			t.Errorf("FormatEok(%.0f) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatKRW(t *testing.T) {
	// 186.382만 is the floored monthly payment on a typical 4억 loan.
	if got := FormatKRW(186.382); got != "1,863,820" {
		t.Errorf("FormatKRW(186.382) = %q, want 1,863,820", got)
	}
}

func TestFormatSignedWon(t *testing.T) {
	if got := FormatSignedWon(42); got != "+42만" {
		t.Errorf("surplus = %q, want +42만", got)
	}
	if got := FormatSignedWon(-17); got != "-17만" {
		t.Errorf("deficit = %q, want -17만", got)
	}
	if got := FormatSignedWon(0); got != "+0만" {
		t.Errorf("zero = %q, want +0만", got)
	}
}

func TestFormatNumberGrouping(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1,000"},
		{1_234_567, "1,234,567"},
		{-1_234, "-1,234"},
	}
	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
