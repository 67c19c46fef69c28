package executor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/DanielPopoola/bambora-gateway-go/internal/config"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports"
	"github.com/google/uuid"
)

const (
	defaultTimeout       = 30 * time.Second
	defaultUserAgent     = "bambora-gateway-go"
	maxResponseBodyBytes = 10 << 20
	headerRequestID      = "X-Request-ID"
	authorizationScheme  = "Passcode "
)

type HTTPExecutor struct {
	httpClient   *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

func NewHTTPExecutor(cfg config.HTTPConfig, logger *slog.Logger) ports.Executor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	maxBodyBytes := cfg.MaxResponseBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = maxResponseBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPExecutor{
		httpClient:   &http.Client{Timeout: timeout},
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

func (e *HTTPExecutor) Execute(ctx context.Context, method, url string, body []byte, creds ports.Credentials) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	requestID := ports.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set("Authorization", AuthorizationHeader(creds))
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", e.userAgent)
	httpReq.Header.Set(headerRequestID, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		e.logger.Error("gateway request failed",
			"request_id", requestID,
			"method", method,
			"url", url,
			"error", err,
		)
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	if int64(len(respBody)) > e.maxBodyBytes {
		e.logger.Error("gateway response too large",
			"request_id", requestID,
			"method", method,
			"url", url,
			"limit", e.maxBodyBytes,
		)
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrResponseTooLarge, e.maxBodyBytes)
	}

	e.logger.Debug("gateway request completed",
		"request_id", requestID,
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: respBody}
		var errResp apiErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Code = errResp.Code
			apiErr.Category = errResp.Category
			apiErr.Message = errResp.Message
			apiErr.Reference = errResp.Reference
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return respBody, apiErr
	}

	return respBody, nil
}

// AuthorizationHeader builds the Passcode authorization value for creds.
func AuthorizationHeader(creds ports.Credentials) string {
	raw := strconv.Itoa(creds.MerchantID) + ":" + creds.Passcode
	return authorizationScheme + base64.StdEncoding.EncodeToString([]byte(raw))
}
