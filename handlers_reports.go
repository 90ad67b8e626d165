package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finerp/models"
	"finerp/pkg/reports"
)

// ledger holds every financial row a user owns. Report functions filter by
// month themselves, so one load serves any window.
type ledger struct {
	payables      []models.Payable
	receivables   []models.Receivable
	goals         []models.Goal
	contributions []models.GoalTransaction
	investments   []models.Investment
}

func loadLedger(userID uint) (*ledger, error) {
	var l ledger
	if err := db.Where("user_id = ?", userID).Find(&l.payables).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).Find(&l.receivables).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).Find(&l.goals).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).Find(&l.contributions).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).Find(&l.investments).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// dashboardHandler returns the current month's headline numbers, the total
// current value of active positions, and short attention lists: up to five
// pending payables due within a week (already-overdue pendings included) and
// up to five active goals with a target date within thirty days (late ones
// included).
func dashboardHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	now := time.Now()
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	rep := reports.Monthly(l.payables, l.receivables, l.goals, l.contributions,
		l.investments, int(now.Month()), now.Year())

	var activeInvestmentsValue float64
	for _, inv := range l.investments {
		if inv.Active {
			activeInvestmentsValue += inv.CurrentValue
		}
	}

	var upcomingPayables []models.Payable
	if err := db.Where("user_id = ? AND status = ? AND due_date <= ?",
		user.ID, models.StatusPending, now.AddDate(0, 0, 7)).
		Order("due_date").Limit(5).Find(&upcomingPayables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	var closingGoals []models.Goal
	if err := db.Where("user_id = ? AND status = ? AND target_date <= ?",
		user.ID, models.GoalActive, now.AddDate(0, 0, 30)).
		Order("target_date").Limit(5).Find(&closingGoals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":                    rep,
		"active_investments_value": activeInvestmentsValue,
		"upcoming_payables":        upcomingPayables,
		"closing_goals":            closingGoals,
	})
}

func monthlyChartHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	months := 12
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 60 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months"})
			return
		}
		months = parsed
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"points": reports.ChartSeries(l.payables, l.receivables, months, time.Now()),
	})
}

// categoryReportHandler breaks one month down by category; type selects the
// expense or income side.
func categoryReportHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	kind := c.DefaultQuery("type", "despesas")
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	var entries []reports.CategoryEntry
	switch kind {
	case "despesas":
		entries = reports.BreakdownPayables(l.payables, month, year)
	case "receitas":
		entries = reports.BreakdownReceivables(l.receivables, month, year)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be despesas or receitas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month":      month,
		"year":       year,
		"type":       kind,
		"categories": entries,
	})
}

func monthlyReportHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, reports.Monthly(l.payables, l.receivables, l.goals,
		l.contributions, l.investments, month, year))
}

func cashFlowHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, reports.CashFlow(l.payables, l.receivables, month, year))
}

func comparisonHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, reports.Compare(l.payables, l.receivables, l.goals,
		l.contributions, l.investments, month, year))
}

func alertsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, reports.Alerts(l.payables, l.receivables, l.goals,
		l.investments, time.Now()))
}

// generateSummaryHandler recomputes a month's totals and upserts the cached
// summary row for it.
func generateSummaryHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	rep := reports.Monthly(l.payables, l.receivables, l.goals, l.contributions,
		l.investments, month, year)

	var summary models.MonthlySummary
	err = db.Where("user_id = ? AND month = ? AND year = ?", user.ID, month, year).
		First(&summary).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	summary.UserID = user.ID
	summary.Month = month
	summary.Year = year
	summary.TotalIncome = rep.TotalIncome
	summary.TotalExpense = rep.TotalExpense
	summary.MonthlyBalance = rep.Balance
	summary.TotalInvested = rep.TotalInvested
	summary.TotalContributions = rep.TotalContributions
	if err := db.Save(&summary).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func getSummaryHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	var summary models.MonthlySummary
	if err := db.Where("user_id = ? AND month = ? AND year = ?", user.ID, month, year).
		First(&summary).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "summary not found"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// exportHandler bundles every monthly view into one document, as JSON or as a
// downloadable CSV.
func exportHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, okMY := monthYearOrNow(c)
	if !okMY {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
		return
	}
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json or csv"})
		return
	}
	l, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	doc := reports.ExportDocument{
		GeneratedAt: time.Now(),
		Month:       month,
		Year:        year,
		Monthly: reports.Monthly(l.payables, l.receivables, l.goals,
			l.contributions, l.investments, month, year),
		CashFlow: reports.CashFlow(l.payables, l.receivables, month, year),
		Comparison: reports.Compare(l.payables, l.receivables, l.goals,
			l.contributions, l.investments, month, year),
		Alerts: reports.Alerts(l.payables, l.receivables, l.goals,
			l.investments, time.Now()),
	}

	var target models.MonthlyTarget
	if err := db.Where("user_id = ? AND month = ? AND year = ?", user.ID, month, year).
		First(&target).Error; err == nil {
		doc.Target = &target
	}

	if format == "json" {
		c.JSON(http.StatusOK, doc)
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteCSV(&buf, doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	filename := fmt.Sprintf("relatorio_%02d_%d.csv", month, year)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
