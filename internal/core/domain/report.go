package domain

import (
	"strings"
	"time"
)

// ReportDateLayout is the wire format of report query dates.
const ReportDateLayout = "2006-01-02T15:04:05"

// ReportDate marshals a time in the layout the reports endpoint expects.
// The layout carries no offset: the wall clock of the time's own location is
// sent as is and the gateway reads it in the merchant account's time zone.
// Convert with In before wrapping a time taken in another zone.
type ReportDate time.Time

func (d ReportDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(ReportDateLayout) + `"`), nil
}

func (d *ReportDate) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*d = ReportDate{}
		return nil
	}
	t, err := time.Parse(ReportDateLayout, raw)
	if err != nil {
		return err
	}
	*d = ReportDate(t)
	return nil
}

// Criteria is one search predicate of a report query. It is forwarded verbatim.
type Criteria struct {
	Field    int    `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// SearchQuery is the body posted to the reports endpoint.
type SearchQuery struct {
	Name      string     `json:"name"`
	StartDate ReportDate `json:"start_date"`
	EndDate   ReportDate `json:"end_date"`
	StartRow  int        `json:"start_row"`
	EndRow    int        `json:"end_row"`
	Criteria  []Criteria `json:"criteria"`
}

// TransactionRecord is one row of a report query result.
type TransactionRecord struct {
	ID            string  `json:"id"`
	RowID         int     `json:"row_id,omitempty"`
	DateTime      string  `json:"trn_date_time,omitempty"`
	Type          string  `json:"trn_type,omitempty"`
	OrderNumber   string  `json:"trn_order_number,omitempty"`
	PaymentMethod string  `json:"trn_payment_method,omitempty"`
	Amount        float64 `json:"trn_amount,omitempty"`
	Response      int     `json:"trn_response,omitempty"`
	MaskedCard    string  `json:"trn_masked_card,omitempty"`
	CardType      string  `json:"trn_card_type,omitempty"`
	MessageID     int     `json:"message_id,omitempty"`
	MessageText   string  `json:"message_text,omitempty"`
}

// RecordList is the envelope of a report query response. Records stays nil
// when the field is absent or null and is empty for "records":[].
type RecordList struct {
	Records []TransactionRecord `json:"records"`
}

// Report query fields.
const (
	FieldTransactionID     = 1
	FieldAmount            = 2
	FieldMaskedCardNumber  = 3
	FieldCardOwner         = 4
	FieldOrderNumber       = 5
	FieldIPAddress         = 6
	FieldAuthorizationCode = 7
	FieldTransactionType   = 8
	FieldCardType          = 9
	FieldResponse          = 10
	FieldBillingName       = 11
	FieldBillingEmail      = 12
	FieldBillingPhone      = 13
	FieldProcessedBy       = 14
)

// Report query operators, already URL encoded as the endpoint expects them.
const (
	OperatorEquals             = "%3D"
	OperatorLessThan           = "%3C"
	OperatorGreaterThan        = "%3E"
	OperatorLessThanOrEqual    = "%3C%3D"
	OperatorGreaterThanOrEqual = "%3E%3D"
	OperatorStartsWith         = "START%20WITH"
)
