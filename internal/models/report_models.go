package models

// DashboardSummary holds key metrics for the dashboard.
type DashboardSummary struct {
	ShootsPlanning     int     `json:"shoots_planning"`
	ShootsScheduled    int     `json:"shoots_scheduled"`
	ShootsInProgress   int     `json:"shoots_in_progress"`
	ShootsThisMonth    int     `json:"shoots_this_month"`
	TalentCount        int     `json:"talent_count"`
	CrewCount          int     `json:"crew_count"`
	InvoiceTotal       float64 `json:"invoice_total"`
	PurchaseOrderCount int     `json:"purchase_order_count"`
	EstimatedSpend     float64 `json:"estimated_spend"` // Sum of ledger estimates on open shoots
	ActualSpend        float64 `json:"actual_spend"`
}

// FirmBillingSummary aggregates issued documents per firm.
type FirmBillingSummary struct {
	FirmID        string  `json:"firm_id"`
	FirmName      string  `json:"firm_name"`
	DocumentCount int     `json:"document_count"`
	InvoiceTotal  float64 `json:"invoice_total"`
	POTotal       float64 `json:"po_total"`
}
