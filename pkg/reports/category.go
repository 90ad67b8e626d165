package reports

import (
	"sort"

	"finerp/models"
)

// CategoryEntry is one slice of a category breakdown: total paid, share of
// the overall total and how many records produced it.
type CategoryEntry struct {
	Category models.Category `json:"category"`
	Total    float64         `json:"total"`
	Percent  float64         `json:"percent"`
	Count    int             `json:"count"`
}

type categoryBucket struct {
	total float64
	count int
}

// BreakdownPayables groups paid payables by category for one month, matched
// by the paid date (not the due date).
func BreakdownPayables(rows []models.Payable, month, year int) []CategoryEntry {
	buckets := map[models.Category]*categoryBucket{}
	for _, r := range rows {
		if r.Status != models.StatusPaid || !inMonth(r.PaidDate, month, year) {
			continue
		}
		b := buckets[r.Category]
		if b == nil {
			b = &categoryBucket{}
			buckets[r.Category] = b
		}
		b.total += r.Amount
		b.count++
	}
	return breakdown(buckets)
}

// BreakdownReceivables groups paid receivables by category for one month,
// matched by the received date.
func BreakdownReceivables(rows []models.Receivable, month, year int) []CategoryEntry {
	buckets := map[models.Category]*categoryBucket{}
	for _, r := range rows {
		if r.Status != models.StatusPaid || !inMonth(r.ReceivedDate, month, year) {
			continue
		}
		b := buckets[r.Category]
		if b == nil {
			b = &categoryBucket{}
			buckets[r.Category] = b
		}
		b.total += r.Amount
		b.count++
	}
	return breakdown(buckets)
}

func breakdown(buckets map[models.Category]*categoryBucket) []CategoryEntry {
	var grand float64
	for _, b := range buckets {
		grand += b.total
	}
	entries := make([]CategoryEntry, 0, len(buckets))
	for cat, b := range buckets {
		pct := 0.0
		if grand > 0 {
			pct = round2(b.total * 100 / grand)
		}
		entries = append(entries, CategoryEntry{
			Category: cat,
			Total:    b.total,
			Percent:  pct,
			Count:    b.count,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}
