package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finerp/models"
)

func loadOwnedReceivable(c *gin.Context) (*models.Receivable, bool) {
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
	var record models.Receivable
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return nil, false
	}
	return &record, true
}

func createReceivableHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Description  string          `json:"description" binding:"required"`
		Amount       float64         `json:"amount" binding:"required,gt=0"`
		DueDate      string          `json:"due_date" binding:"required"`
		Category     models.Category `json:"category" binding:"required,categoria"`
		Observations string          `json:"observations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	due, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}
	record := models.Receivable{
		UserID:       user.ID,
		Description:  req.Description,
		Amount:       req.Amount,
		DueDate:      due,
		Category:     req.Category,
		Status:       models.StatusPending,
		Observations: req.Observations,
	}
	if err := db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func listReceivablesHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Model(&models.Receivable{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if !models.RecordStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		q = q.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		if !models.Category(category).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		q = q.Where("category = ?", category)
	}
	if c.Query("month") != "" || c.Query("year") != "" {
		month, year, okMY := monthYearOrNow(c)
		if !okMY {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month/year"})
			return
		}
		q = q.Where("EXTRACT(MONTH FROM due_date) = ? AND EXTRACT(YEAR FROM due_date) = ?", month, year)
	}
	var records []models.Receivable
	if err := q.Order("due_date").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func getReceivableHandler(c *gin.Context) {
	record, ok := loadOwnedReceivable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record)
}

func updateReceivableHandler(c *gin.Context) {
	record, ok := loadOwnedReceivable(c)
	if !ok {
		return
	}
	var req struct {
		Description  *string              `json:"description"`
		Amount       *float64             `json:"amount" binding:"omitempty,gt=0"`
		DueDate      *string              `json:"due_date"`
		ReceivedDate *string              `json:"received_date"`
		Category     *models.Category     `json:"category" binding:"omitempty,categoria"`
		Status       *models.RecordStatus `json:"status" binding:"omitempty,statusconta"`
		Observations *string              `json:"observations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Amount != nil {
		record.Amount = *req.Amount
	}
	if req.DueDate != nil {
		due, err := parseDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
			return
		}
		record.DueDate = due
	}
	if req.ReceivedDate != nil {
		received, err := parseDate(*req.ReceivedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid received_date"})
			return
		}
		record.ReceivedDate = &received
	}
	if req.Category != nil {
		record.Category = *req.Category
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Observations != nil {
		record.Observations = *req.Observations
	}
	if err := db.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func deleteReceivableHandler(c *gin.Context) {
	record, ok := loadOwnedReceivable(c)
	if !ok {
		return
	}
	if err := db.Delete(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

// receiveReceivableHandler marks the amount as received, defaulting the
// received date to today.
func receiveReceivableHandler(c *gin.Context) {
	record, ok := loadOwnedReceivable(c)
	if !ok {
		return
	}
	var req struct {
		ReceivedDate string `json:"received_date"`
	}
	// body is optional, but a present body must be well-formed
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	received := time.Now()
	if req.ReceivedDate != "" {
		parsed, err := parseDate(req.ReceivedDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid received_date"})
			return
		}
		received = parsed
	}
	record.Status = models.StatusPaid
	record.ReceivedDate = &received
	if err := db.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, record)
}
