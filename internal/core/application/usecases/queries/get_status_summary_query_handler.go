package queries

import (
	"context"

	"tracking/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetStatusSummaryQueryHandler counts packages per status straight from the
// packages table. Every valid status appears in the response, ordered by
// code, including those with a zero count.
//
// Example:
//
//	handler := NewGetStatusSummaryQueryHandler(db)
//	summary, err := handler.Handle(ctx, NewGetStatusSummaryQuery())
//	for _, line := range summary {
//	    fmt.Printf("%s: %d\n", line.Status, line.Count)
//	}
type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

func (h GetStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusSummaryQuery,
) ([]GetStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM packages
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[parcel.Status]int64)
	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[parcel.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	summary := make([]GetStatusSummaryQueryResponse, 0, len(parcel.Statuses()))
	for _, s := range parcel.Statuses() {
		summary = append(summary, GetStatusSummaryQueryResponse{
			Status: s,
			Count:  counts[s],
		})
	}

	return summary, nil
}
