package reports

import (
	"fmt"
	"time"

	"finerp/models"
)

// AlertsReport flags records that need attention right now. The negative
// balance check runs over lifetime paid totals, not a single month.
type AlertsReport struct {
	OverduePayables   []models.Payable    `json:"overdue_payables"`
	LateGoals         []models.Goal       `json:"late_goals"`
	LosingInvestments []models.Investment `json:"losing_investments"`
	LifetimeBalance   float64             `json:"lifetime_balance"`
	NegativeBalance   bool                `json:"saldo_negativo"`
	Critical          bool                `json:"critical"`
	Messages          []string            `json:"messages"`
}

// Alerts inspects the full record set as of now.
func Alerts(payables []models.Payable, receivables []models.Receivable,
	goals []models.Goal, investments []models.Investment, now time.Time) AlertsReport {

	var rep AlertsReport

	var lifetimeIncome, lifetimeExpense float64
	for _, p := range payables {
		if p.Status == models.StatusPaid {
			lifetimeExpense += p.Amount
		}
		if p.Status == models.StatusOverdue && p.DueDate.Before(now) {
			rep.OverduePayables = append(rep.OverduePayables, p)
		}
	}
	for _, r := range receivables {
		if r.Status == models.StatusPaid {
			lifetimeIncome += r.Amount
		}
	}
	for _, g := range goals {
		if g.Status == models.GoalActive && g.TargetDate.Before(now) {
			rep.LateGoals = append(rep.LateGoals, g)
		}
	}
	for _, inv := range investments {
		if inv.Active && inv.CurrentValue < inv.InvestedAmount {
			rep.LosingInvestments = append(rep.LosingInvestments, inv)
		}
	}

	rep.LifetimeBalance = lifetimeIncome - lifetimeExpense
	rep.NegativeBalance = rep.LifetimeBalance < 0

	if n := len(rep.OverduePayables); n > 0 {
		msg := fmt.Sprintf("Voce tem %d conta(s) vencida(s)", n)
		if n > criticalOverduePayables {
			msg = fmt.Sprintf("CRITICO: %d contas vencidas", n)
			rep.Critical = true
		}
		rep.Messages = append(rep.Messages, msg)
	}
	if n := len(rep.LateGoals); n > 0 {
		msg := fmt.Sprintf("%d meta(s) passaram da data alvo", n)
		if n > criticalLateGoals {
			msg = fmt.Sprintf("CRITICO: %d metas atrasadas", n)
			rep.Critical = true
		}
		rep.Messages = append(rep.Messages, msg)
	}
	if n := len(rep.LosingInvestments); n > 0 {
		rep.Messages = append(rep.Messages, fmt.Sprintf("%d investimento(s) abaixo do valor aplicado", n))
	}
	if rep.NegativeBalance {
		rep.Critical = true
		rep.Messages = append(rep.Messages, "CRITICO: saldo acumulado negativo")
	}
	return rep
}
