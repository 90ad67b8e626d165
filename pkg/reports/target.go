package reports

import "finerp/models"

// Realized carries one month's realized amounts for the four tracked metrics.
type Realized struct {
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
	Savings    float64 `json:"savings"`
}

// RealizedTotals recomputes the four realized metrics from the ledger for one
// month. Income/expense match on payment dates; investments and savings on
// their own date fields.
func RealizedTotals(payables []models.Payable, receivables []models.Receivable,
	contributions []models.GoalTransaction, investments []models.Investment,
	month, year int) Realized {

	return Realized{
		Income:     MonthIncome(receivables, month, year),
		Expense:    MonthExpense(payables, month, year),
		Investment: MonthInvested(investments, month, year),
		Savings:    MonthContributions(contributions, month, year),
	}
}

// PercentOf returns realized/target as a percentage, 0 when the target is not
// positive.
func PercentOf(realized, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round2(realized * 100 / target)
}

// OverallStatus maps the unweighted average of the metric percentages to a
// qualitative label. Cutoffs are inclusive: exactly 80 is good, exactly 60 is
// regular.
func OverallStatus(percents ...float64) string {
	if len(percents) == 0 {
		return StatusPoor
	}
	var sum float64
	for _, p := range percents {
		sum += p
	}
	avg := sum / float64(len(percents))
	switch {
	case avg >= statusExcellentCutoff:
		return StatusExcellent
	case avg >= statusGoodCutoff:
		return StatusGood
	case avg >= statusRegularCutoff:
		return StatusRegular
	default:
		return StatusPoor
	}
}

// TrackTarget fills a target row's realized amounts, per-metric percentages
// and overall status from the given realized totals.
func TrackTarget(target models.MonthlyTarget, realized Realized) models.MonthlyTarget {
	target.RealizedIncome = realized.Income
	target.RealizedExpense = realized.Expense
	target.RealizedInvestment = realized.Investment
	target.RealizedSavings = realized.Savings

	target.PercentIncome = PercentOf(realized.Income, target.TargetIncome)
	target.PercentExpense = PercentOf(realized.Expense, target.TargetExpense)
	target.PercentInvestment = PercentOf(realized.Investment, target.TargetInvestment)
	target.PercentSavings = PercentOf(realized.Savings, target.TargetSavings)

	target.OverallStatus = OverallStatus(
		target.PercentIncome,
		target.PercentExpense,
		target.PercentInvestment,
		target.PercentSavings,
	)
	return target
}
