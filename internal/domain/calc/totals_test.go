package calc

import (
	"math"
	"testing"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func multiplier(m float64) *float64 { return &m }

func sampleRows() []entity.GameRow {
	return []entity.GameRow{
		{
			Type:       "आ.",
			Income:     "1000",
			O:          "10",
			Jod:        "5",
			Ko:         "2",
			Multiplier: multiplier(8),
			Pan:        &entity.PairValue{Val1: "2", Val2: "3"},
		},
	}
}

func TestRowContributionWithMultiplier(t *testing.T) {
	c := RowContribution(sampleRows()[0])

	if !almostEqual(c.O, 80) {
		t.Errorf("O = %v, want 80", c.O)
	}
	if !almostEqual(c.Jod, 400) {
		t.Errorf("Jod = %v, want 400", c.Jod)
	}
	if !almostEqual(c.Ko, 16) {
		t.Errorf("Ko = %v, want 16", c.Ko)
	}
	if !almostEqual(c.Pan, 6) {
		t.Errorf("Pan = %v, want 6", c.Pan)
	}
	if !almostEqual(c.Sum(), 502) {
		t.Errorf("Sum = %v, want 502", c.Sum())
	}
}

func TestRowContributionWithoutMultiplier(t *testing.T) {
	row := entity.GameRow{O: "10+20", Jod: "5", Ko: "3"}
	c := RowContribution(row)

	if !almostEqual(c.O, 30) || !almostEqual(c.Jod, 5) || !almostEqual(c.Ko, 3) {
		t.Errorf("unscaled contribution = %+v, want O=30 Jod=5 Ko=3", c)
	}
}

func TestRowContributionPairValues(t *testing.T) {
	tests := []struct {
		name string
		row  entity.GameRow
		want float64
	}{
		{"gun product", entity.GameRow{Gun: &entity.PairValue{Val1: "4", Val2: "5"}}, 20},
		{"blank side", entity.GameRow{Gun: &entity.PairValue{Val1: "", Val2: "5"}}, 0},
		{"non-numeric side", entity.GameRow{Gun: &entity.PairValue{Val1: "x", Val2: "5"}}, 0},
		{"absent", entity.GameRow{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowContribution(tt.row).Gun; !almostEqual(got, tt.want) {
				t.Errorf("Gun = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeTotalsCascade(t *testing.T) {
	got := ComputeTotals(sampleRows(), Adjustments{})

	want := Totals{
		TotalIncome:         1000,
		Payment:             502,
		Deduction:           100,
		AfterDeduction:      900,
		RemainingBalance:    398,
		TotalDue:            398,
		JamaTotal:           398,
		FinalTotalAfterChuk: 398,
		FinalTotal:          398,
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"TotalIncome", got.TotalIncome, want.TotalIncome},
		{"Payment", got.Payment, want.Payment},
		{"Deduction", got.Deduction, want.Deduction},
		{"AfterDeduction", got.AfterDeduction, want.AfterDeduction},
		{"RemainingBalance", got.RemainingBalance, want.RemainingBalance},
		{"TotalDue", got.TotalDue, want.TotalDue},
		{"JamaTotal", got.JamaTotal, want.JamaTotal},
		{"FinalTotalAfterChuk", got.FinalTotalAfterChuk, want.FinalTotalAfterChuk},
		{"FinalTotal", got.FinalTotal, want.FinalTotal},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestComputeTotalsWithAdjustments(t *testing.T) {
	adj := Adjustments{Jama: 100, Chuk: 20, AdvanceAmount: 30, CuttingAmount: 10}
	got := ComputeTotals(sampleRows(), adj)

	if !almostEqual(got.JamaTotal, 298) {
		t.Errorf("JamaTotal = %v, want 298", got.JamaTotal)
	}
	if !almostEqual(got.FinalTotalAfterChuk, 278) {
		t.Errorf("FinalTotalAfterChuk = %v, want 278", got.FinalTotalAfterChuk)
	}
	if !almostEqual(got.FinalTotal, 238) {
		t.Errorf("FinalTotal = %v, want 238", got.FinalTotal)
	}
}

func TestComputeTotalsJamaMonotonicity(t *testing.T) {
	rows := sampleRows()
	base := ComputeTotals(rows, Adjustments{Jama: 50})
	raised := ComputeTotals(rows, Adjustments{Jama: 125})

	const delta = 75.0
	if !almostEqual(base.JamaTotal-raised.JamaTotal, delta) {
		t.Errorf("JamaTotal moved by %v, want %v", base.JamaTotal-raised.JamaTotal, delta)
	}
	if !almostEqual(base.FinalTotalAfterChuk-raised.FinalTotalAfterChuk, delta) {
		t.Errorf("FinalTotalAfterChuk moved by %v, want %v", base.FinalTotalAfterChuk-raised.FinalTotalAfterChuk, delta)
	}
	if !almostEqual(base.FinalTotal-raised.FinalTotal, delta) {
		t.Errorf("FinalTotal moved by %v, want %v", base.FinalTotal-raised.FinalTotal, delta)
	}
}

func TestComputeTotalsSigned(t *testing.T) {
	// Payment exceeds income after deduction, so every later stage goes
	// negative and must stay negative.
	rows := []entity.GameRow{{Income: "100", O: "500"}}
	got := ComputeTotals(rows, Adjustments{Jama: 10})

	if !almostEqual(got.RemainingBalance, -410) {
		t.Errorf("RemainingBalance = %v, want -410", got.RemainingBalance)
	}
	if !almostEqual(got.FinalTotal, -420) {
		t.Errorf("FinalTotal = %v, want -420", got.FinalTotal)
	}
}

func TestComputeTotalsEmptyRows(t *testing.T) {
	got := ComputeTotals(nil, Adjustments{})
	if got.TotalIncome != 0 || got.Payment != 0 || got.FinalTotal != 0 {
		t.Errorf("empty rows produced non-zero totals: %+v", got)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	rows := sampleRows()
	adj := Adjustments{Jama: 100, Chuk: 20}

	first := ComputeTotals(rows, adj)
	second := ComputeTotals(rows, adj)
	if first != second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
}

func TestRecalculateOverwritesSubmittedTotals(t *testing.T) {
	r := &entity.Receipt{
		GameRows: sampleRows(),
		Jama:     100,
		Chuk:     20,
		// Bogus client-submitted figures that must not survive.
		TotalIncome: 9999,
		FinalTotal:  -1,
	}
	Recalculate(r)

	if !almostEqual(r.TotalIncome, 1000) {
		t.Errorf("TotalIncome = %v, want 1000", r.TotalIncome)
	}
	if !almostEqual(r.Payment, 502) {
		t.Errorf("Payment = %v, want 502", r.Payment)
	}
	if !almostEqual(r.JamaTotal, 298) {
		t.Errorf("JamaTotal = %v, want 298", r.JamaTotal)
	}
	if !almostEqual(r.FinalTotalAfterChuk, 278) {
		t.Errorf("FinalTotalAfterChuk = %v, want 278", r.FinalTotalAfterChuk)
	}
	if !almostEqual(r.JodFinalTotal, 400) {
		t.Errorf("JodFinalTotal = %v, want 400", r.JodFinalTotal)
	}

	// Running it again must not change anything.
	beforeFinal, beforeIncome := r.FinalTotal, r.TotalIncome
	Recalculate(r)
	if r.FinalTotal != beforeFinal || r.TotalIncome != beforeIncome {
		t.Errorf("second recalculation changed the receipt")
	}
}

func TestMultiplierFor(t *testing.T) {
	if m := MultiplierFor("आ."); m == nil || *m != 8 {
		t.Errorf("MultiplierFor(आ.) = %v, want 8", m)
	}
	if m := MultiplierFor("कु."); m == nil || *m != 9 {
		t.Errorf("MultiplierFor(कु.) = %v, want 9", m)
	}
	if m := MultiplierFor("other"); m != nil {
		t.Errorf("MultiplierFor(other) = %v, want nil", *m)
	}
}
