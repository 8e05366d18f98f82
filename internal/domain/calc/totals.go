package calc

import "github.com/gamebook/gamebook-api/internal/domain/entity"

// deductionRate is the fixed commission taken off total income.
const deductionRate = 0.10

// jodFactor: jod entries pay on a two-digit pair, so a row multiplier
// applies tenfold to the jod column.
const jodFactor = 10

// Contribution is the payable amount of one or more game rows split by
// category.
type Contribution struct {
	O       float64 `json:"o"`
	Jod     float64 `json:"jod"`
	Ko      float64 `json:"ko"`
	Pan     float64 `json:"pan"`
	Gun     float64 `json:"gun"`
	Special float64 `json:"special"`
}

// Sum returns the total payable amount across all categories
func (c Contribution) Sum() float64 {
	return c.O + c.Jod + c.Ko + c.Pan + c.Gun + c.Special
}

func (c *Contribution) add(other Contribution) {
	c.O += other.O
	c.Jod += other.Jod
	c.Ko += other.Ko
	c.Pan += other.Pan
	c.Gun += other.Gun
	c.Special += other.Special
}

// RowContribution computes the payable amount of a single game row. O, Jod
// and Ko are evaluated as expressions; when the row carries a multiplier m,
// O and Ko scale by m and Jod by m*10, otherwise the raw values stand.
// Pan, Gun and Special each pay val1*val2.
func RowContribution(row entity.GameRow) Contribution {
	o := Evaluate(row.O)
	jod := Evaluate(row.Jod)
	ko := Evaluate(row.Ko)

	var c Contribution
	if row.Multiplier != nil {
		m := *row.Multiplier
		c.O = o * m
		c.Jod = jod * m * jodFactor
		c.Ko = ko * m
	} else {
		c.O = o
		c.Jod = jod
		c.Ko = ko
	}
	c.Pan = pairProduct(row.Pan)
	c.Gun = pairProduct(row.Gun)
	c.Special = pairProduct(row.Special)
	return c
}

func pairProduct(p *entity.PairValue) float64 {
	if p == nil {
		return 0
	}
	return Number(p.Val1) * Number(p.Val2)
}

// Adjustments are the manual figures entered on a receipt after the rows.
// A missing figure is simply 0.
type Adjustments struct {
	Jama          float64
	Chuk          float64
	AdvanceAmount float64
	CuttingAmount float64
}

// Totals is the full derived-output set of a receipt
type Totals struct {
	TotalIncome         float64
	Payment             float64
	Deduction           float64
	AfterDeduction      float64
	RemainingBalance    float64
	TotalDue            float64
	JamaTotal           float64
	FinalTotalAfterChuk float64
	FinalTotal          float64
	Category            Contribution
}

// ComputeTotals runs the fixed settlement cascade over a receipt's rows:
//
//	totalIncome      = sum of row incomes (plain numbers, not expressions)
//	payment          = sum of every row's category contributions
//	deduction        = totalIncome * 10%
//	afterDeduction   = totalIncome - deduction
//	remainingBalance = afterDeduction - payment   (= totalDue)
//	jamaTotal        = totalDue - jama
//	finalAfterChuk   = jamaTotal - chuk
//	finalTotal       = finalAfterChuk - advance - cutting
//
// Every stage is signed; negative intermediate or final values are kept
// as-is, never clamped.
func ComputeTotals(rows []entity.GameRow, adj Adjustments) Totals {
	var t Totals
	for _, row := range rows {
		t.TotalIncome += Number(row.Income)
		t.Category.add(RowContribution(row))
	}

	t.Payment = t.Category.Sum()
	t.Deduction = t.TotalIncome * deductionRate
	t.AfterDeduction = t.TotalIncome - t.Deduction
	t.RemainingBalance = t.AfterDeduction - t.Payment
	t.TotalDue = t.RemainingBalance
	t.JamaTotal = t.TotalDue - adj.Jama
	t.FinalTotalAfterChuk = t.JamaTotal - adj.Chuk
	t.FinalTotal = t.FinalTotalAfterChuk - adj.AdvanceAmount - adj.CuttingAmount
	return t
}

// Recalculate recomputes every derived field of a receipt in place from its
// rows and adjustment inputs. Client-submitted totals are overwritten.
func Recalculate(r *entity.Receipt) {
	t := ComputeTotals(r.GameRows, Adjustments{
		Jama:          r.Jama,
		Chuk:          r.Chuk,
		AdvanceAmount: r.AdvanceAmount,
		CuttingAmount: r.CuttingAmount,
	})

	r.TotalIncome = t.TotalIncome
	r.Deduction = t.Deduction
	r.AfterDeduction = t.AfterDeduction
	r.Payment = t.Payment
	r.RemainingBalance = t.RemainingBalance
	r.TotalDue = t.TotalDue
	r.JamaTotal = t.JamaTotal
	r.FinalTotalAfterChuk = t.FinalTotalAfterChuk
	r.FinalTotal = t.FinalTotal
	r.OFinalTotal = t.Category.O
	r.JodFinalTotal = t.Category.Jod
	r.KoFinalTotal = t.Category.Ko
	r.PanFinalTotal = t.Category.Pan
	r.GunFinalTotal = t.Category.Gun
	r.SpecialFinalTotal = t.Category.Special
}

// MultiplierFor returns the row multiplier mandated for a game type label,
// or nil when the type carries no multiplier.
func MultiplierFor(gameType string) *float64 {
	var m float64
	switch gameType {
	case "आ.":
		m = 8
	case "कु.":
		m = 9
	default:
		return nil
	}
	return &m
}
