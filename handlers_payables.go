package main

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"finerp/models"
	"finerp/pkg/schedule"
)

// loadOwnedPayable resolves :id under the caller's ownership scope. A row
// belonging to another user is indistinguishable from a missing one.
func loadOwnedPayable(c *gin.Context) (*models.Payable, bool) {
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
	var record models.Payable
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return nil, false
	}
	return &record, true
}

func createPayableHandler(c *gin.Context) {
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
	record := models.Payable{
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

// listPayablesHandler lists with optional status/category/month+year filters,
// ordered by due date.
func listPayablesHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Model(&models.Payable{}).Where("user_id = ?", user.ID)
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
	var records []models.Payable
	if err := q.Order("due_date").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func getPayableHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record)
}

// updatePayableHandler applies only the fields present in the request body.
func updatePayableHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	var req struct {
		Description  *string              `json:"description"`
		Amount       *float64             `json:"amount" binding:"omitempty,gt=0"`
		DueDate      *string              `json:"due_date"`
		PaidDate     *string              `json:"paid_date"`
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
	if req.PaidDate != nil {
		paid, err := parseDate(*req.PaidDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paid_date"})
			return
		}
		record.PaidDate = &paid
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

func deletePayableHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	if err := db.Delete(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

// markPayablePaid sets paid status and date. Re-marking an already paid
// record is a permitted no-op that just refreshes the paid date.
func markPayablePaid(c *gin.Context, record *models.Payable) {
	var req struct {
		PaidDate string `json:"paid_date"`
	}
	// body is optional, but a present body must be well-formed
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	paid := time.Now()
	if req.PaidDate != "" {
		parsed, err := parseDate(req.PaidDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paid_date"})
			return
		}
		paid = parsed
	}
	record.Status = models.StatusPaid
	record.PaidDate = &paid
	if err := db.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func payPayableHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	markPayablePaid(c, record)
}

// createInstallmentGroupHandler splits one obligation into N monthly
// payables. The group key is generated up front, so no row ever needs to be
// patched after insert. Each installment carries total/count with no
// remainder redistribution; the rounding drift on uneven divisions is a known
// precision gap.
func createInstallmentGroupHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Description      string          `json:"description" binding:"required"`
		TotalAmount      float64         `json:"total_amount" binding:"required,gt=0"`
		FirstDueDate     string          `json:"first_due_date" binding:"required"`
		Category         models.Category `json:"category" binding:"required,categoria"`
		InstallmentCount int             `json:"installment_count" binding:"required,min=1"`
		Observations     string          `json:"observations"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	firstDue, err := parseDate(req.FirstDueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid first_due_date"})
		return
	}

	perInstallment := req.TotalAmount / float64(req.InstallmentCount)
	groupID := uuid.NewString()
	dueDates := schedule.MonthlyDueDates(firstDue, req.InstallmentCount)

	records := make([]models.Payable, 0, req.InstallmentCount)
	for i, due := range dueDates {
		records = append(records, models.Payable{
			UserID:            user.ID,
			Description:       installmentDescription(req.Description, i+1, req.InstallmentCount),
			Amount:            perInstallment,
			DueDate:           due,
			Category:          req.Category,
			Status:            models.StatusPending,
			Observations:      req.Observations,
			IsInstallment:     true,
			InstallmentIndex:  i + 1,
			InstallmentCount:  req.InstallmentCount,
			InstallmentAmount: perInstallment,
			GroupID:           groupID,
		})
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func installmentDescription(base string, index, count int) string {
	return base + " - Parcela " + strconv.Itoa(index) + "/" + strconv.Itoa(count)
}

// listInstallmentsHandler lists every sibling of an installment row, ordered
// by rank. Calling it with a plain payable is a validation error, not a 404.
func listInstallmentsHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	if !record.IsInstallment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record is not part of an installment group"})
		return
	}
	var siblings []models.Payable
	if err := db.Where("group_id = ? AND user_id = ?", record.GroupID, record.UserID).
		Order("installment_index").Find(&siblings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, siblings)
}

// advanceInstallmentHandler brings one installment's due date forward.
func advanceInstallmentHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	if !record.IsInstallment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record is not part of an installment group"})
		return
	}
	var req struct {
		NewDueDate string `json:"new_due_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	due, err := parseDate(req.NewDueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid new_due_date"})
		return
	}
	record.DueDate = due
	if err := db.Save(record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func payInstallmentHandler(c *gin.Context) {
	record, ok := loadOwnedPayable(c)
	if !ok {
		return
	}
	if !record.IsInstallment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record is not part of an installment group"})
		return
	}
	markPayablePaid(c, record)
}
