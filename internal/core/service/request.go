package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports"
	"github.com/google/uuid"
)

var (
	errNullBody   = errors.New("response body is null")
	errNoExecutor = errors.New("no executor configured")
)

// capability is the state shared by every API accessor: the configuration
// handed out by the Gateway and the collaborators used to reach the wire.
type capability struct {
	kind          domain.Capability
	configuration *domain.Configuration
	executor      ports.Executor
	codec         ports.Codec
	logger        *slog.Logger
}

func (c *capability) credentials() (ports.Credentials, error) {
	if c.configuration == nil {
		return ports.Credentials{}, domain.NewMissingCredentialError(c.kind)
	}
	passcode := c.configuration.Passcode(c.kind)
	if passcode == "" {
		return ports.Credentials{}, domain.NewMissingCredentialError(c.kind)
	}
	return ports.Credentials{
		MerchantID: c.configuration.MerchantID,
		Passcode:   passcode,
	}, nil
}

func (c *capability) url(template, id string) string {
	return ResolveURL(c.configuration, template, id)
}

// dispatch encodes payload (when not nil), sends it with this capability's
// passcode and returns the raw response body.
func (c *capability) dispatch(ctx context.Context, method, url string, payload any) ([]byte, error) {
	creds, err := c.credentials()
	if err != nil {
		return nil, err
	}

	var body []byte
	if payload != nil {
		body, err = c.codec.Encode(payload)
		if err != nil {
			return nil, domain.NewEncodeError(string(c.kind), err)
		}
	}

	if c.executor == nil {
		return nil, domain.NewTransportError(method, url, errNoExecutor)
	}

	requestID := uuid.NewString()
	ctx = ports.WithRequestID(ctx, requestID)

	c.logger.Debug("dispatching gateway request",
		"request_id", requestID,
		"method", method,
		"url", url,
		"merchant_id", creds.MerchantID,
	)

	respBody, err := c.executor.Execute(ctx, method, url, body, creds)
	if err != nil {
		c.logger.Error("gateway request failed",
			"request_id", requestID,
			"method", method,
			"url", url,
			"error", err,
		)
		return nil, domain.NewTransportError(method, url, err)
	}

	return respBody, nil
}

// send is a generic helper for a request whose response body decodes into Resp.
func send[Resp any](ctx context.Context, c *capability, method, url string, payload any, target string) (*Resp, error) {
	body, err := c.dispatch(ctx, method, url, payload)
	if err != nil {
		return nil, err
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, domain.NewDecodeError(target, errNullBody)
	}

	var resp Resp
	if err := c.codec.Decode(body, &resp); err != nil {
		return nil, domain.NewDecodeError(target, err)
	}

	return &resp, nil
}
