package forecast

import (
	"testing"

	"github.com/hojung1231/nestegg/internal/model"
)

func flatBase(monthly float64) []float64 {
	base := make([]float64, 12)
	for i := range base {
		base[i] = monthly
	}
	return base
}

func TestApplyRaiseYearZeroIdentity(t *testing.T) {
	base := []float64{400, 410, 420, 400, 400, 400, 400, 400, 400, 400, 400, 800}
	for _, rate := range []float64{1.0, 3.5, 10.0} {
		got := ApplyRaise(base, rate, 0)
		for i := range base {
			if got[i] != base[i] {
				t.Fatalf("rate %.1f offset 0: month %d = %.2f, want %.2f", rate, i, got[i], base[i])
			}
		}
	}
}

func TestNetFromGrossTruncates(t *testing.T) {
	tests := []struct {
		gross float64
		want  int
	}{
		{0, 0},
		{400, 360},
		{300, 270},
		{333, 299}, // 299.7 truncated, not rounded
		{1, 0},
	}
	for _, tc := range tests {
		if got := NetFromGross(tc.gross); got != tc.want {
			t.Errorf("NetFromGross(%.0f) = %d, want %d", tc.gross, got, tc.want)
		}
	}

	// Monotonically non-decreasing in gross.
	prev := -1
	for g := 0.0; g <= 1000; g += 7.3 {
		net := NetFromGross(g)
		if net < prev {
			t.Fatalf("net decreased: NetFromGross(%.1f) = %d after %d", g, net, prev)
		}
		prev = net
	}
}

func TestGrossBaseModes(t *testing.T) {
	annual := GrossBase(model.IncomeInput{Mode: model.IncomeAnnualGross, AnnualGross: 4800})
	for m, g := range annual {
		if g != 400 {
			t.Fatalf("annual mode month %d gross = %.2f, want 400", m, g)
		}
	}

	// Monthly-net entries reconstruct gross so that net(gross) round-trips.
	nets := flatBase(270)
	fromNet := GrossBase(model.IncomeInput{Mode: model.IncomeMonthlyNet, MonthlyNet: nets})
	for m, g := range fromNet {
		if got := NetFromGross(g); got != 270 {
			t.Fatalf("net round trip month %d: gross %.2f nets to %d, want 270", m, g, got)
		}
	}
}

func TestProjectNetBaseYearScenario(t *testing.T) {
	// Husband 4800 annual gross: year 0 must be 360 every month.
	h := Horizon{StartYear: 2024, EndYear: 2051}
	years := ProjectNet(flatBase(400), 3.5, h)

	if len(years) != 28 {
		t.Fatalf("year count = %d, want 28", len(years))
	}
	for m, net := range years[0] {
		if net != 360 {
			t.Errorf("year 0 month %d net = %d, want 360", m, net)
		}
	}
	// Raises compound: year 1 = floor(400*1.035*0.9) = 372.
	if years[1][0] != 372 {
		t.Errorf("year 1 month 0 net = %d, want 372", years[1][0])
	}
}

func TestLeavePayAuto(t *testing.T) {
	w := model.LeaveWindow{PayMode: model.LeavePayAuto}
	tests := []struct {
		name  string
		gross float64
		idx   int
		want  int
	}{
		{"month 1 capped at 250", 400, 0, 250},
		{"month 3 capped at 250", 400, 2, 250},
		{"month 4 capped at 200", 400, 3, 200},
		{"month 6 capped at 200", 400, 5, 200},
		{"month 7 capped at 150", 400, 6, 150},
		{"low gross under first cap", 200, 0, 180},
		{"low gross under second cap", 200, 4, 180},
		{"low gross at 80 percent", 200, 7, 144},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LeavePay(tc.gross, tc.idx, w); got != tc.want {
				t.Fatalf("LeavePay(%.0f, %d) = %d, want %d", tc.gross, tc.idx, got, tc.want)
			}
		})
	}
}

func TestLeavePayManualOverride(t *testing.T) {
	manual := []int{150, 150, 150, 150, 150, 123, 150, 150, 150, 150, 150, 150}
	w := model.LeaveWindow{PayMode: model.LeavePayManual, Manual: manual}

	if got := LeavePay(400, 5, w); got != 123 {
		t.Fatalf("manual index 5 = %d, want 123", got)
	}
	if got := LeavePay(400, 0, w); got != 150 {
		t.Fatalf("manual index 0 = %d, want 150", got)
	}
	// Past the 12-entry table the statutory formula takes over.
	if got := LeavePay(400, 12, w); got != 150 {
		t.Fatalf("manual index 12 = %d, want statutory 150", got)
	}
}

func TestApplyLeaveOutsideHorizonIsNoOp(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2026}
	base := flatBase(400)
	years := ProjectNet(base, 3.5, h)
	want := ProjectNet(base, 3.5, h)

	w := model.LeaveWindow{StartYear: 2030, StartMonth: 1, Months: 6, PayMode: model.LeavePayAuto}
	got := ApplyLeave(years, h, w, base, 3.5)
	for y := range want {
		for m := range want[y] {
			if got[y][m] != want[y][m] {
				t.Fatalf("year %d month %d changed: %d != %d", y, m, got[y][m], want[y][m])
			}
		}
	}
}

func TestApplyLeaveTruncatesAtHorizonEnd(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2025}
	base := flatBase(400)
	years := ProjectNet(base, 3.5, h)

	// 12 leave months starting 2025-10: only 3 fit before the horizon ends.
	w := model.LeaveWindow{StartYear: 2025, StartMonth: 10, Months: 12, PayMode: model.LeavePayAuto}
	got := ApplyLeave(years, h, w, base, 3.5)

	for m := 9; m < 12; m++ {
		if got[1][m] != 250 {
			t.Errorf("leave month %d = %d, want 250", m, got[1][m])
		}
	}
	if got[1][8] == 250 {
		t.Error("month before leave start was overwritten")
	}
}

func TestApplyLeaveZeroMonthsIsNoOp(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2024}
	base := flatBase(400)
	years := ProjectNet(base, 3.5, h)

	w := model.LeaveWindow{StartYear: 2024, StartMonth: 1, Months: 0, PayMode: model.LeavePayAuto}
	got := ApplyLeave(years, h, w, base, 3.5)
	for m, net := range got[0] {
		if net != 360 {
			t.Fatalf("month %d = %d, want 360", m, net)
		}
	}
}

func TestApplyLeaveSpansYearBoundaryWithRaise(t *testing.T) {
	// Gross low enough that no cap binds, so the raise is visible in the
	// substituted pay: year 0 December 90, year 1 January int(110*0.9)=99.
	h := Horizon{StartYear: 2024, EndYear: 2025}
	base := flatBase(100)
	years := ProjectNet(base, 10.0, h)

	w := model.LeaveWindow{StartYear: 2024, StartMonth: 12, Months: 2, PayMode: model.LeavePayAuto}
	got := ApplyLeave(years, h, w, base, 10.0)

	if got[0][11] != 90 {
		t.Errorf("leave month in base year = %d, want 90", got[0][11])
	}
	if got[1][0] != 99 {
		t.Errorf("leave month after year boundary = %d, want 99", got[1][0])
	}
	// The leave-path gross must agree with the materialized grid's own
	// year-1 values for unaffected months.
	if got[1][1] != 99 {
		t.Errorf("regular year 1 net = %d, want 99", got[1][1])
	}
}

func TestProjectIncomeCombined(t *testing.T) {
	h := Horizon{StartYear: 2024, EndYear: 2051}
	husband := model.IncomeInput{Mode: model.IncomeAnnualGross, AnnualGross: 4800, RaisePct: 3.5}
	wife := model.IncomeInput{Mode: model.IncomeAnnualGross, AnnualGross: 3600, RaisePct: 3.5}
	none := model.LeaveWindow{PayMode: model.LeavePayAuto}

	proj := ProjectIncome(h, husband, wife, none, none)
	if proj.Years() != 28 {
		t.Fatalf("projected years = %d, want 28", proj.Years())
	}
	if proj.Husband[0][0] != 360 || proj.Wife[0][0] != 270 {
		t.Fatalf("year 0 month 1 nets = %d/%d, want 360/270", proj.Husband[0][0], proj.Wife[0][0])
	}

	monthly := proj.CombinedMonthly()
	if len(monthly) != 28*12 {
		t.Fatalf("combined months = %d, want %d", len(monthly), 28*12)
	}
	if monthly[0] != 630 {
		t.Fatalf("combined year 0 month 1 = %.0f, want 630", monthly[0])
	}
}
