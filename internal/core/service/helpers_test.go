package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DanielPopoola/bambora-gateway-go/internal/adapters/codec"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports/mocks"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/service"
)

const testMerchantID = 300200578

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newGateway returns a Gateway whose default transport is a mock executor.
func newGateway(t *testing.T, opts ...service.Option) (*service.Gateway, *mocks.MockExecutor) {
	t.Helper()
	transport := mocks.NewMockExecutor(t)
	return service.NewGateway(discardLogger(), transport, codec.NewJSONCodec(), opts...), transport
}

// newTestGateway returns a Gateway with every passcode set and a mock executor.
func newTestGateway(t *testing.T) (*service.Gateway, *mocks.MockExecutor) {
	t.Helper()
	gw, exec := newGateway(t)
	gw.SetMerchantID(testMerchantID)
	gw.SetPaymentsAPIKey("payments-key")
	gw.SetProfilesAPIKey("profiles-key")
	gw.SetReportingAPIKey("reporting-key")
	return gw, exec
}

func creds(passcode string) ports.Credentials {
	return ports.Credentials{MerchantID: testMerchantID, Passcode: passcode}
}
