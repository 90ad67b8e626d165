// Package reports derives every dashboard, chart and report figure from the
// current record set. All functions are pure over the rows handed in; nothing
// here touches the database, so the installment/goal/ledger semantics can be
// pinned down by plain unit tests.
package reports

import (
	"math"
	"time"
)

// Escalation thresholds and qualitative cutoffs. Hardcoded on purpose; the
// source system treats them as constants, not configuration.
const (
	criticalOverduePayables = 5
	criticalLateGoals       = 3

	statusExcellentCutoff = 100.0
	statusGoodCutoff      = 80.0
	statusRegularCutoff   = 60.0
)

// Qualitative labels for monthly target tracking.
const (
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusRegular   = "regular"
	StatusPoor      = "poor"
)

// Trend labels for the month-over-month comparison.
const (
	TrendGrowth  = "growth"
	TrendDecline = "decline"
	TrendStable  = "stable"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// inMonth reports whether an optional date falls in the given month/year.
// Records without the date (never paid/received) never match.
func inMonth(d *time.Time, month, year int) bool {
	return d != nil && int(d.Month()) == month && d.Year() == year
}

func dateInMonth(d time.Time, month, year int) bool {
	return int(d.Month()) == month && d.Year() == year
}
