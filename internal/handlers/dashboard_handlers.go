package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"studio_ops_backend/internal/database"
	"studio_ops_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardSummary provides a summary of key metrics for the dashboard.
func GetDashboardSummary(c *gin.Context) {
	db := database.GetDB()
	var summary models.DashboardSummary
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	// Shoots by status
	rows, err := db.Query(`SELECT status, COUNT(*) FROM shoots GROUP BY status`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shoot counts: " + err.Error()})
		return
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan shoot counts: " + err.Error()})
			return
		}
		switch status {
		case models.ShootStatusPlanning:
			summary.ShootsPlanning = count
		case models.ShootStatusScheduled:
			summary.ShootsScheduled = count
		case models.ShootStatusInProgress:
			summary.ShootsInProgress = count
		}
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read shoot counts: " + err.Error()})
		return
	}

	// Shoots dated this month
	err = db.QueryRow(`SELECT COUNT(*) FROM shoots WHERE shoot_date >= $1 AND shoot_date <= $2`,
		startOfMonth.Format("2006-01-02"), endOfMonth.Format("2006-01-02")).Scan(&summary.ShootsThisMonth)
	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get monthly shoot count: " + err.Error()})
		return
	}

	// Roster sizes
	if err := db.QueryRow(`SELECT COUNT(*) FROM talent_members`).Scan(&summary.TalentCount); err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get talent count: " + err.Error()})
		return
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM crew_members`).Scan(&summary.CrewCount); err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get crew count: " + err.Error()})
		return
	}

	// Issued documents
	err = db.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM documents WHERE doc_type = $1`,
		models.DocumentTypeInvoice).Scan(&summary.InvoiceTotal)
	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get invoice total: " + err.Error()})
		return
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM documents WHERE doc_type = $1`,
		models.DocumentTypePurchaseOrder).Scan(&summary.PurchaseOrderCount)
	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get purchase order count: " + err.Error()})
		return
	}

	// Ledger spend on shoots that are not finished
	err = db.QueryRow(`SELECT COALESCE(SUM(e.estimated_amount), 0), COALESCE(SUM(e.actual_amount), 0)
	                   FROM shoot_expenses e JOIN shoots s ON s.id = e.shoot_id
	                   WHERE s.status NOT IN ($1, $2)`,
		models.ShootStatusCompleted, models.ShootStatusCancelled).Scan(&summary.EstimatedSpend, &summary.ActualSpend)
	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get ledger spend: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetFirmBillingSummary aggregates issued documents per firm.
func GetFirmBillingSummary(c *gin.Context) {
	db := database.GetDB()

	rows, err := db.Query(`
		SELECT f.id, f.name,
			COUNT(d.id) as document_count,
			COALESCE(SUM(d.total) FILTER (WHERE d.doc_type = $1), 0) as invoice_total,
			COALESCE(SUM(d.total) FILTER (WHERE d.doc_type = $2), 0) as po_total
		FROM firms f
		LEFT JOIN documents d ON d.firm_id = f.id
		GROUP BY f.id, f.name
		ORDER BY f.name ASC`,
		models.DocumentTypeInvoice, models.DocumentTypePurchaseOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query firm billing summary: " + err.Error()})
		return
	}
	defer rows.Close()

	summaries := []models.FirmBillingSummary{}
	for rows.Next() {
		var s models.FirmBillingSummary
		if err := rows.Scan(&s.FirmID, &s.FirmName, &s.DocumentCount, &s.InvoiceTotal, &s.POTotal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan firm billing summary: " + err.Error()})
			return
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read firm billing summary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summaries})
}
