package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
)

// MaxQueryRows is the largest allowed difference between a query's end and start rows.
const MaxQueryRows = 1000

const searchReportName = "Search"

var errMissingRecords = errors.New("records field is missing or null")

type ReportingAPI struct {
	capability
}

// GetTransaction fetches a single payment by id. It is authorized with the
// payments passcode, not the reporting one.
func (r *ReportingAPI) GetTransaction(ctx context.Context, paymentID string) (*domain.Transaction, error) {
	payments := r.capability
	payments.kind = domain.CapabilityPayments

	url := payments.url(PaymentURL, paymentID)
	return send[domain.Transaction](ctx, &payments, http.MethodGet, url, nil, "transaction")
}

// Query searches transactions between startDate and endDate, inclusive. Rows
// startRow through endRow are returned; callers page by calling again with
// new row bounds.
//
// Dates are sent as wall clock time in their own location, without an
// offset. Pass them in the merchant account's time zone.
func (r *ReportingAPI) Query(
	ctx context.Context,
	startDate, endDate time.Time,
	startRow, endRow int,
	criteria ...domain.Criteria,
) ([]domain.TransactionRecord, error) {
	if err := validateQuery(startDate, endDate, startRow, endRow); err != nil {
		return nil, err
	}

	if criteria == nil {
		criteria = []domain.Criteria{}
	}

	query := domain.SearchQuery{
		Name:      searchReportName,
		StartDate: domain.ReportDate(startDate),
		EndDate:   domain.ReportDate(endDate),
		StartRow:  startRow,
		EndRow:    endRow,
		Criteria:  criteria,
	}

	url := r.url(ReportsURL, "")
	body, err := r.dispatch(ctx, http.MethodPost, url, query)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("report query response", "url", url, "body", string(body))

	var records domain.RecordList
	if err := r.codec.Decode(body, &records); err != nil {
		return nil, domain.NewDecodeError("report", err)
	}
	if records.Records == nil {
		return nil, domain.NewDecodeError("report", errMissingRecords)
	}

	return records.Records, nil
}

func validateQuery(startDate, endDate time.Time, startRow, endRow int) error {
	if startDate.IsZero() || endDate.IsZero() {
		return domain.NewMissingDateError()
	}
	if endDate.Before(startDate) {
		return domain.NewDateRangeError()
	}
	if endRow < startRow {
		return domain.NewRowRangeError(startRow, endRow)
	}
	if endRow-startRow > MaxQueryRows {
		return domain.NewPageTooLargeError(startRow, endRow, MaxQueryRows)
	}
	return nil
}
