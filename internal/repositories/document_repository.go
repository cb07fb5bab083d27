package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"studio_ops_backend/internal/models"

	"github.com/lib/pq"
)

// DocumentRepository defines the interface for the issued-document
// registry. The registry is append-only: there are no update or delete
// operations, issued documents are permanent records.
type DocumentRepository interface {
	CreateDocument(executor SQLExecutor, doc *models.Document) (string, error)
	GetDocumentByID(id string) (*models.Document, error)
	GetDocuments(filters models.DocumentFilters) ([]models.Document, int, error)
	CountByFirm(executor SQLExecutor, firmID string) (int, error)
}

type documentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository(db *sql.DB) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `id, doc_number, issue_date, shoot_id, firm_id, recipient_id, recipient_name,
	billing_category, total, doc_type, created_at`

func scanDocumentRow(row scanner, isList bool) (*models.Document, int, error) {
	var d models.Document
	var totalCount int

	scanDest := []interface{}{
		&d.ID, &d.Number, &d.Date, &d.ShootID, &d.FirmID, &d.RecipientID, &d.RecipientName,
		&d.BillingCategory, &d.Total, &d.Type, &d.CreatedAt,
	}
	if isList {
		scanDest = append(scanDest, &totalCount)
	}

	if err := row.Scan(scanDest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("%w: scanning document: %v", ErrDatabaseError, err)
	}
	d.Items = []models.DocumentItem{}
	return &d, totalCount, nil
}

// CreateDocument records an issued document with its line items.
// Numbers are a per-firm running count and may repeat across firms, so
// no uniqueness is enforced on them here.
func (r *documentRepository) CreateDocument(executor SQLExecutor, doc *models.Document) (string, error) {
	query := `INSERT INTO documents (` + documentColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	doc.CreatedAt = time.Now()
	_, err := executor.Exec(query,
		doc.ID, doc.Number, doc.Date, doc.ShootID, doc.FirmID, doc.RecipientID, doc.RecipientName,
		doc.BillingCategory, doc.Total, doc.Type, doc.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating document: %v", ErrDatabaseError, err)
	}

	itemQuery := `INSERT INTO document_items (document_id, position, description, quantity, rate, amount)
	              VALUES ($1, $2, $3, $4, $5, $6)`
	for i, item := range doc.Items {
		if _, err := executor.Exec(itemQuery, doc.ID, i, item.Description, item.Quantity, item.Rate, item.Amount); err != nil {
			return "", fmt.Errorf("%w: inserting document item: %v", ErrDatabaseError, err)
		}
	}
	return doc.ID, nil
}

// GetDocumentByID retrieves a document together with its line items.
func (r *documentRepository) GetDocumentByID(id string) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	doc, _, err := scanDocumentRow(r.db.QueryRow(query, id), false)
	if err != nil {
		return nil, err
	}
	itemsByDoc, err := r.loadItems([]string{id})
	if err != nil {
		return nil, err
	}
	if items, ok := itemsByDoc[id]; ok {
		doc.Items = items
	}
	return doc, nil
}

// GetDocuments retrieves documents with pagination and filters, newest
// first, line items included.
func (r *documentRepository) GetDocuments(filters models.DocumentFilters) ([]models.Document, int, error) {
	docs := []models.Document{}
	var totalCount int

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + documentColumns + `, COUNT(*) OVER() as total_count FROM documents`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filters.FirmID != nil && *filters.FirmID != "" {
		conditions = append(conditions, fmt.Sprintf("firm_id = $%d", argCount))
		args = append(args, *filters.FirmID)
		argCount++
	}
	if filters.DocType != nil && *filters.DocType != "" {
		conditions = append(conditions, fmt.Sprintf("doc_type = $%d", argCount))
		args = append(args, *filters.DocType)
		argCount++
	}
	if filters.Search != nil && *filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(doc_number ILIKE $%d OR recipient_name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*filters.Search+"%")
		argCount++
	}
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC")

	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argCount))
		args = append(args, filters.PageSize)
		argCount++
		if filters.Page > 0 {
			queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argCount))
			args = append(args, (filters.Page-1)*filters.PageSize)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying documents: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	docIDs := []string{}
	for rows.Next() {
		doc, scannedTotal, scanErr := scanDocumentRow(rows, true)
		if scanErr != nil {
			return nil, 0, scanErr
		}
		docs = append(docs, *doc)
		docIDs = append(docIDs, doc.ID)
		totalCount = scannedTotal
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating document rows: %v", ErrDatabaseError, err)
	}
	if len(docs) == 0 {
		return docs, 0, nil
	}

	itemsByDoc, err := r.loadItems(docIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range docs {
		if items, ok := itemsByDoc[docs[i].ID]; ok {
			docs[i].Items = items
		}
	}
	return docs, totalCount, nil
}

func (r *documentRepository) loadItems(docIDs []string) (map[string][]models.DocumentItem, error) {
	query := `SELECT document_id, description, quantity, rate, amount
	          FROM document_items WHERE document_id = ANY($1) ORDER BY document_id, position ASC`

	rows, err := r.db.Query(query, pq.Array(docIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: querying document items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	result := map[string][]models.DocumentItem{}
	for rows.Next() {
		var docID string
		var item models.DocumentItem
		if err := rows.Scan(&docID, &item.Description, &item.Quantity, &item.Rate, &item.Amount); err != nil {
			return nil, fmt.Errorf("%w: scanning document item: %v", ErrDatabaseError, err)
		}
		result[docID] = append(result[docID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating document item rows: %v", ErrDatabaseError, err)
	}
	return result, nil
}

// CountByFirm returns how many documents a firm has issued. The count
// feeds the sequential part of the next document number.
func (r *documentRepository) CountByFirm(executor SQLExecutor, firmID string) (int, error) {
	var count int
	err := executor.QueryRow(`SELECT COUNT(*) FROM documents WHERE firm_id = $1`, firmID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting documents for firm %s: %v", ErrDatabaseError, firmID, err)
	}
	return count, nil
}
