package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finerp/models"
)

func loadOwnedGoal(c *gin.Context) (*models.Goal, bool) {
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
	var goal models.Goal
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return nil, false
	}
	return &goal, true
}

func createGoalHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Title        string  `json:"title" binding:"required"`
		Description  string  `json:"description"`
		TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
		StartDate    string  `json:"start_date" binding:"required"`
		TargetDate   string  `json:"target_date" binding:"required"`
		Color        string  `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	target, err := parseDate(req.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_date"})
		return
	}
	if target.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_date precedes start_date"})
		return
	}
	goal := models.Goal{
		UserID:       user.ID,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    start,
		TargetDate:   target,
		Status:       models.GoalActive,
		Color:        req.Color,
	}
	if goal.Color == "" {
		goal.Color = "#3B82F6"
	}
	if err := db.Create(&goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func listGoalsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Model(&models.Goal{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !models.GoalStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		q = q.Where("status = ?", status)
	}
	var goals []models.Goal
	if err := q.Order("target_date").Find(&goals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func getGoalHandler(c *gin.Context) {
	goal, ok := loadOwnedGoal(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, goal)
}

func updateGoalHandler(c *gin.Context) {
	goal, ok := loadOwnedGoal(c)
	if !ok {
		return
	}
	var req struct {
		Title        *string            `json:"title"`
		Description  *string            `json:"description"`
		TargetAmount *float64           `json:"target_amount" binding:"omitempty,gt=0"`
		StartDate    *string            `json:"start_date"`
		TargetDate   *string            `json:"target_date"`
		Status       *models.GoalStatus `json:"status" binding:"omitempty,statusmeta"`
		Color        *string            `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		goal.StartDate = start
	}
	if req.TargetDate != nil {
		target, err := parseDate(*req.TargetDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target_date"})
			return
		}
		goal.TargetDate = target
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Color != nil {
		goal.Color = *req.Color
	}
	// A raised or lowered target can change completion state, but an
	// explicitly requested status always wins: pausing or cancelling an
	// over-target goal must stick.
	if req.Status == nil && req.TargetAmount != nil {
		goal.Status = models.GoalStatusAfter(goal.CurrentAmount, goal.TargetAmount, goal.Status)
	}
	if err := db.Save(goal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// deleteGoalHandler removes the goal and its contribution history together.
func deleteGoalHandler(c *gin.Context) {
	goal, ok := loadOwnedGoal(c)
	if !ok {
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.GoalTransaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(goal).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

// createGoalTransactionHandler records a contribution and bumps the goal's
// running total atomically. The increment is an SQL expression, so two
// concurrent contributions both land.
func createGoalTransactionHandler(c *gin.Context) {
	goal, ok := loadOwnedGoal(c)
	if !ok {
		return
	}
	var req struct {
		Amount          float64 `json:"amount" binding:"required,gt=0"`
		Description     string  `json:"description"`
		TransactionDate string  `json:"transaction_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	txDate := time.Now()
	if req.TransactionDate != "" {
		parsed, err := parseDate(req.TransactionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction_date"})
			return
		}
		txDate = parsed
	}
	contribution := models.GoalTransaction{
		UserID:          goal.UserID,
		GoalID:          goal.ID,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: txDate,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contribution).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Goal{}).Where("id = ?", goal.ID).
			UpdateColumn("current_amount", gorm.Expr("current_amount + ?", req.Amount)).Error; err != nil {
			return err
		}
		if err := tx.First(goal, goal.ID).Error; err != nil {
			return err
		}
		next := models.GoalStatusAfter(goal.CurrentAmount, goal.TargetAmount, goal.Status)
		if next != goal.Status {
			goal.Status = next
			return tx.Model(goal).Update("status", next).Error
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": contribution, "goal": goal})
}

func listGoalTransactionsHandler(c *gin.Context) {
	goal, ok := loadOwnedGoal(c)
	if !ok {
		return
	}
	var transactions []models.GoalTransaction
	if err := db.Where("goal_id = ?", goal.ID).
		Order("transaction_date DESC, id DESC").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// deleteGoalTransactionHandler removes a contribution and rolls the goal's
// total back by the same amount.
func deleteGoalTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var contribution models.GoalTransaction
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&contribution).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
		return
	}
	var goal models.Goal
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&contribution).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Goal{}).Where("id = ?", contribution.GoalID).
			UpdateColumn("current_amount", gorm.Expr("current_amount - ?", contribution.Amount)).Error; err != nil {
			return err
		}
		if err := tx.First(&goal, contribution.GoalID).Error; err != nil {
			return err
		}
		next := models.GoalStatusAfter(goal.CurrentAmount, goal.TargetAmount, goal.Status)
		if next != goal.Status {
			goal.Status = next
			return tx.Model(&goal).Update("status", next).Error
		}
		return nil
	})
	if txErr != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted", "goal": goal})
}
