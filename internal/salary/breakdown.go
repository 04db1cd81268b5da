package salary

type BreakdownLine struct {
	Component string
	Type      string // TypeEarning or TypeDeduction
	Amount    float64
}

type Breakdown struct {
	Lines []BreakdownLine
}

// EarningsTotal is the gross figure used by increment math; deductions are
// reported but never subtracted from it.
func (b Breakdown) EarningsTotal() float64 {
	var total float64
	for _, line := range b.Lines {
		if line.Type == TypeEarning {
			total += line.Amount
		}
	}
	return total
}

func (b Breakdown) DeductionsTotal() float64 {
	var total float64
	for _, line := range b.Lines {
		if line.Type == TypeDeduction {
			total += line.Amount
		}
	}
	return total
}

func (b Breakdown) NetTotal() float64 {
	return b.EarningsTotal() - b.DeductionsTotal()
}
