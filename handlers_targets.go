package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finerp/models"
	"finerp/pkg/reports"
)

func loadOwnedTarget(c *gin.Context) (*models.MonthlyTarget, bool) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}
	var target models.MonthlyTarget
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
		return nil, false
	}
	return &target, true
}

func createMonthlyTargetHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Month            int     `json:"month" binding:"required,min=1,max=12"`
		Year             int     `json:"year" binding:"required,min=2000"`
		TargetIncome     float64 `json:"target_income" binding:"omitempty,gte=0"`
		TargetExpense    float64 `json:"target_expense" binding:"omitempty,gte=0"`
		TargetInvestment float64 `json:"target_investment" binding:"omitempty,gte=0"`
		TargetSavings    float64 `json:"target_savings" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var existing models.MonthlyTarget
	err := db.Where("user_id = ? AND month = ? AND year = ?", user.ID, req.Month, req.Year).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target already exists for this month"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	target := models.MonthlyTarget{
		UserID:           user.ID,
		Month:            req.Month,
		Year:             req.Year,
		TargetIncome:     req.TargetIncome,
		TargetExpense:    req.TargetExpense,
		TargetInvestment: req.TargetInvestment,
		TargetSavings:    req.TargetSavings,
	}
	if err := db.Create(&target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, target)
}

func listMonthlyTargetsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var targets []models.MonthlyTarget
	if err := db.Where("user_id = ?", user.ID).
		Order("year DESC, month DESC").Find(&targets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, targets)
}

func getMonthlyTargetHandler(c *gin.Context) {
	target, ok := loadOwnedTarget(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, target)
}

// updateMonthlyTargetHandler changes target amounts only. Realized amounts are
// derived data; the tracking endpoint recomputes them.
func updateMonthlyTargetHandler(c *gin.Context) {
	target, ok := loadOwnedTarget(c)
	if !ok {
		return
	}
	var req struct {
		TargetIncome     *float64 `json:"target_income" binding:"omitempty,gte=0"`
		TargetExpense    *float64 `json:"target_expense" binding:"omitempty,gte=0"`
		TargetInvestment *float64 `json:"target_investment" binding:"omitempty,gte=0"`
		TargetSavings    *float64 `json:"target_savings" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TargetIncome != nil {
		target.TargetIncome = *req.TargetIncome
	}
	if req.TargetExpense != nil {
		target.TargetExpense = *req.TargetExpense
	}
	if req.TargetInvestment != nil {
		target.TargetInvestment = *req.TargetInvestment
	}
	if req.TargetSavings != nil {
		target.TargetSavings = *req.TargetSavings
	}
	if err := db.Save(target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, target)
}

func deleteMonthlyTargetHandler(c *gin.Context) {
	target, ok := loadOwnedTarget(c)
	if !ok {
		return
	}
	if err := db.Delete(target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "target deleted"})
}

// trackMonthlyTargetHandler recomputes realized amounts against the ledger for
// the requested month (default: current), persists the refreshed row and
// returns it.
func trackMonthlyTargetHandler(c *gin.Context) {
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
	var target models.MonthlyTarget
	if err := db.Where("user_id = ? AND month = ? AND year = ?", user.ID, month, year).
		First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
		return
	}
	ledger, err := loadLedger(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	realized := reports.RealizedTotals(ledger.payables, ledger.receivables,
		ledger.contributions, ledger.investments, month, year)
	target = reports.TrackTarget(target, realized)
	if err := db.Save(&target).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, target)
}
