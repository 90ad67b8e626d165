package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finerp/models"
)

func loadOwnedInvestment(c *gin.Context) (*models.Investment, bool) {
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
	var investment models.Investment
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&investment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "investment not found"})
		return nil, false
	}
	return &investment, true
}

func createInvestmentHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name           string                `json:"name" binding:"required"`
		Type           models.InvestmentType `json:"type" binding:"required,tipoinvestimento"`
		InvestedAmount float64               `json:"invested_amount" binding:"required,gt=0"`
		CurrentValue   *float64              `json:"current_value" binding:"omitempty,gte=0"`
		InvestmentDate string                `json:"investment_date" binding:"required"`
		RedemptionDate string                `json:"redemption_date"`
		AnnualYield    *float64              `json:"annual_yield"`
		Observations   string                `json:"observations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	investedAt, err := parseDate(req.InvestmentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid investment_date"})
		return
	}
	investment := models.Investment{
		UserID:         user.ID,
		Name:           req.Name,
		Type:           req.Type,
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.InvestedAmount,
		InvestmentDate: investedAt,
		AnnualYield:    req.AnnualYield,
		Observations:   req.Observations,
		Active:         true,
	}
	if req.CurrentValue != nil {
		investment.CurrentValue = *req.CurrentValue
	}
	if req.RedemptionDate != "" {
		redemption, err := parseDate(req.RedemptionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid redemption_date"})
			return
		}
		investment.RedemptionDate = &redemption
	}
	if err := db.Create(&investment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, investment)
}

func listInvestmentsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Model(&models.Investment{}).Where("user_id = ?", user.ID)
	if typ := c.Query("type"); typ != "" {
		if !models.InvestmentType(typ).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type"})
			return
		}
		q = q.Where("type = ?", typ)
	}
	if active := c.Query("active"); active != "" {
		parsed, err := strconv.ParseBool(active)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active"})
			return
		}
		q = q.Where("active = ?", parsed)
	}
	var investments []models.Investment
	if err := q.Order("investment_date DESC").Find(&investments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, investments)
}

func getInvestmentHandler(c *gin.Context) {
	investment, ok := loadOwnedInvestment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, investment)
}

func updateInvestmentHandler(c *gin.Context) {
	investment, ok := loadOwnedInvestment(c)
	if !ok {
		return
	}
	var req struct {
		Name           *string                `json:"name"`
		Type           *models.InvestmentType `json:"type" binding:"omitempty,tipoinvestimento"`
		InvestedAmount *float64               `json:"invested_amount" binding:"omitempty,gt=0"`
		CurrentValue   *float64               `json:"current_value" binding:"omitempty,gte=0"`
		InvestmentDate *string                `json:"investment_date"`
		RedemptionDate *string                `json:"redemption_date"`
		AnnualYield    *float64               `json:"annual_yield"`
		Observations   *string                `json:"observations"`
		Active         *bool                  `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		investment.Name = *req.Name
	}
	if req.Type != nil {
		investment.Type = *req.Type
	}
	if req.InvestedAmount != nil {
		investment.InvestedAmount = *req.InvestedAmount
	}
	if req.CurrentValue != nil {
		investment.CurrentValue = *req.CurrentValue
	}
	if req.InvestmentDate != nil {
		investedAt, err := parseDate(*req.InvestmentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid investment_date"})
			return
		}
		investment.InvestmentDate = investedAt
	}
	if req.RedemptionDate != nil {
		redemption, err := parseDate(*req.RedemptionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid redemption_date"})
			return
		}
		investment.RedemptionDate = &redemption
	}
	if req.AnnualYield != nil {
		investment.AnnualYield = req.AnnualYield
	}
	if req.Observations != nil {
		investment.Observations = *req.Observations
	}
	if req.Active != nil {
		investment.Active = *req.Active
	}
	if err := db.Save(investment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, investment)
}

func deleteInvestmentHandler(c *gin.Context) {
	investment, ok := loadOwnedInvestment(c)
	if !ok {
		return
	}
	if err := db.Delete(investment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "investment deleted"})
}
