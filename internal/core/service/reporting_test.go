package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DanielPopoola/bambora-gateway-go/internal/adapters/executor"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports/mocks"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReportingTestSuite struct {
	suite.Suite
	gateway  *service.Gateway
	executor *mocks.MockExecutor
	start    time.Time
	end      time.Time
}

func TestReportingSuite(t *testing.T) {
	suite.Run(t, new(ReportingTestSuite))
}

func (suite *ReportingTestSuite) SetupTest() {
	suite.gateway, suite.executor = newTestGateway(suite.T())
	suite.start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.end = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingTestSuite) TestQuery_InvalidArguments() {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		startRow int
		endRow   int
		reason   string
	}{
		{"missing start date", time.Time{}, suite.end, 1, 10, domain.ReasonMissingDate},
		{"missing end date", suite.start, time.Time{}, 1, 10, domain.ReasonMissingDate},
		{"end date before start date",
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			1, 10, domain.ReasonDateRange},
		{"end row before start row", suite.start, suite.end, 50, 10, domain.ReasonRowRange},
		{"page larger than 1000 rows", suite.start, suite.end, 0, 1001, domain.ReasonPageTooLarge},
		{"missing date wins over row checks", time.Time{}, time.Time{}, 50, 10, domain.ReasonMissingDate},
		{"date range wins over page size", suite.end, suite.start, 0, 5000, domain.ReasonDateRange},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			records, err := suite.gateway.Reporting().Query(context.Background(), tt.start, tt.end, tt.startRow, tt.endRow)

			suite.Require().Error(err)
			suite.Nil(records)
			suite.True(domain.IsInvalidArgument(err, tt.reason), "got %v", err)
			suite.True(domain.IsErrorCode(err, domain.ErrCodeInvalidArgument))
		})
	}

	suite.executor.AssertNotCalled(suite.T(), "Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingTestSuite) TestQuery_AllowsExactly1000RowSpan() {
	suite.executor.EXPECT().
		Execute(mock.Anything, http.MethodPost, mock.Anything, mock.Anything, creds("reporting-key")).
		Return([]byte(`{"records":[]}`), nil).
		Once()

	records, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 0, 1000)

	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *ReportingTestSuite) TestQuery_AllowsEqualDates() {
	suite.executor.EXPECT().
		Execute(mock.Anything, http.MethodPost, mock.Anything, mock.Anything, mock.Anything).
		Return([]byte(`{"records":[]}`), nil).
		Once()

	_, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.start, 5, 5)

	suite.Require().NoError(err)
}

func (suite *ReportingTestSuite) TestQuery_ReturnsRecordsInOrder() {
	suite.executor.EXPECT().
		Execute(mock.Anything, http.MethodPost, "https://www.na.bambora.com/v1/reports", mock.Anything, creds("reporting-key")).
		Return([]byte(`{"records":[{"id":"t1"},{"id":"t2"}]}`), nil).
		Once()

	records, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 25)

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("t1", records[0].ID)
	suite.Equal("t2", records[1].ID)
}

func (suite *ReportingTestSuite) TestQuery_SendsSearchPayload() {
	criteria := []domain.Criteria{
		{Field: domain.FieldAmount, Operator: domain.OperatorGreaterThan, Value: "10"},
		{Field: domain.FieldOrderNumber, Operator: domain.OperatorEquals, Value: "ORD-1"},
	}

	var sent []byte
	suite.executor.EXPECT().
		Execute(mock.Anything, http.MethodPost, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, _ string, body []byte, _ ports.Credentials) {
			sent = body
		}).
		Return([]byte(`{"records":[]}`), nil).
		Once()

	_, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 100, criteria...)
	suite.Require().NoError(err)

	suite.JSONEq(`{
		"name": "Search",
		"start_date": "2024-01-01T00:00:00",
		"end_date": "2024-01-31T00:00:00",
		"start_row": 1,
		"end_row": 100,
		"criteria": [
			{"field": 2, "operator": "%3E", "value": "10"},
			{"field": 5, "operator": "%3D", "value": "ORD-1"}
		]
	}`, string(sent))
}

func (suite *ReportingTestSuite) TestQuery_EmptyCriteriaSentAsArray() {
	var sent map[string]any
	suite.executor.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, _ string, body []byte, _ ports.Credentials) {
			suite.Require().NoError(json.Unmarshal(body, &sent))
		}).
		Return([]byte(`{"records":[]}`), nil).
		Once()

	_, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 2)
	suite.Require().NoError(err)

	suite.Equal([]any{}, sent["criteria"])
}

func (suite *ReportingTestSuite) TestQuery_MissingReportingPasscode() {
	suite.gateway.SetReportingAPIKey("")

	_, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 2)

	suite.Require().Error(err)
	suite.True(domain.IsErrorCode(err, domain.ErrCodeMissingCredential))
	suite.executor.AssertNotCalled(suite.T(), "Execute", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingTestSuite) TestQuery_TransportErrorPropagates() {
	apiErr := &executor.APIError{StatusCode: http.StatusForbidden, Code: 21, Message: "Authentication failed"}
	suite.executor.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apiErr).
		Once()

	_, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 2)

	suite.Require().Error(err)
	suite.True(domain.IsErrorCode(err, domain.ErrCodeTransport))
	got, ok := executor.IsAPIError(err)
	suite.Require().True(ok)
	suite.Equal(21, got.Code)
}

func (suite *ReportingTestSuite) TestQuery_DecodeError() {
	tests := []struct {
		name string
		body string
	}{
		{"html page", `<html>oops</html>`},
		{"gateway error body", `{"code":21,"message":"Authentication failed"}`},
		{"null body", `null`},
		{"empty object", `{}`},
		{"null records", `{"records":null}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.executor.EXPECT().
				Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return([]byte(tt.body), nil).
				Once()

			records, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 2)

			suite.Require().Error(err)
			suite.Nil(records)
			suite.True(domain.IsErrorCode(err, domain.ErrCodeDecode), "got %v", err)
		})
	}
}

func (suite *ReportingTestSuite) TestQuery_EmptyRecordsIsNotAnError() {
	suite.executor.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]byte(`{"records":[]}`), nil).
		Once()

	records, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 2)

	suite.Require().NoError(err)
	suite.NotNil(records)
	suite.Empty(records)
}

func (suite *ReportingTestSuite) TestQuery_SendsWallClockOfDateLocation() {
	toronto := time.FixedZone("EST", -5*60*60)

	var sent map[string]any
	suite.executor.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, _ string, body []byte, _ ports.Credentials) {
			suite.Require().NoError(json.Unmarshal(body, &sent))
		}).
		Return([]byte(`{"records":[]}`), nil).
		Once()

	_, err := suite.gateway.Reporting().Query(context.Background(),
		time.Date(2024, 3, 1, 9, 30, 0, 0, toronto),
		time.Date(2024, 3, 1, 17, 0, 0, 0, toronto),
		1, 2)
	suite.Require().NoError(err)

	suite.Equal("2024-03-01T09:30:00", sent["start_date"])
	suite.Equal("2024-03-01T17:00:00", sent["end_date"])
}

func (suite *ReportingTestSuite) TestQuery_TagsEachDispatchWithRequestID() {
	var ids []string
	suite.executor.EXPECT().
		Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ string, _ string, _ []byte, _ ports.Credentials) {
			ids = append(ids, ports.RequestIDFromContext(ctx))
		}).
		Return([]byte(`{"records":[]}`), nil).
		Twice()

	for i := 0; i < 2; i++ {
		_, err := suite.gateway.Reporting().Query(context.Background(), suite.start, suite.end, 1, 2)
		suite.Require().NoError(err)
	}

	suite.Require().Len(ids, 2)
	suite.NotEmpty(ids[0])
	suite.NotEmpty(ids[1])
	suite.NotEqual(ids[0], ids[1])
}

func TestGetTransaction_DecodesTransaction(t *testing.T) {
	gw, exec := newTestGateway(t)

	var requestedURL string
	exec.EXPECT().
		Execute(mock.Anything, http.MethodGet, mock.Anything, []byte(nil), creds("payments-key")).
		Run(func(_ context.Context, _ string, url string, _ []byte, _ ports.Credentials) {
			requestedURL = url
		}).
		Return([]byte(`{"id":"abc123","amount":10.00}`), nil).
		Once()

	txn, err := gw.Reporting().GetTransaction(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", txn.ID)
	assert.Equal(t, 10.00, txn.Amount)
	assert.Contains(t, requestedURL, "abc123")
	assert.Equal(t, "https://www.na.bambora.com/v1/payments/abc123", requestedURL)
}

func TestGetTransaction_UsesPaymentsPasscode(t *testing.T) {
	gw, _ := newTestGateway(t)
	gw.SetPaymentsAPIKey("")

	_, err := gw.Reporting().GetTransaction(context.Background(), "abc123")

	require.Error(t, err)
	var gwErr *domain.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, domain.ErrCodeMissingCredential, gwErr.Code)
	assert.Equal(t, string(domain.CapabilityPayments), gwErr.Reason)
}

func TestGetTransaction_EmptyIDIsForwarded(t *testing.T) {
	gw, exec := newTestGateway(t)

	exec.EXPECT().
		Execute(mock.Anything, http.MethodGet, "https://www.na.bambora.com/v1/payments/", mock.Anything, mock.Anything).
		Return(nil, errors.New("404 page not found")).
		Once()

	txn, err := gw.Reporting().GetTransaction(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransport))
}

func TestGetTransaction_RejectsNullBody(t *testing.T) {
	gw, exec := newTestGateway(t)

	exec.EXPECT().
		Execute(mock.Anything, http.MethodGet, mock.Anything, mock.Anything, mock.Anything).
		Return([]byte("null\n"), nil).
		Once()

	txn, err := gw.Reporting().GetTransaction(context.Background(), "abc123")

	require.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeDecode))
}
