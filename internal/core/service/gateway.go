package service

import (
	"log/slog"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports"
)

// Gateway is the entry point to the Payments, Profiles and Reporting APIs.
//
// Each API needs its own passcode, and the merchant id must be set before any
// call is made. Credentials live in a single Configuration that the Gateway
// creates on first use and shares with every API it hands out.
//
// A Gateway is not safe for concurrent use. Create one per goroutine.
type Gateway struct {
	logger    *slog.Logger
	transport ports.Executor
	override  ports.Executor
	codec     ports.Codec

	merchantID int
	apiVersion string
	platform   string

	configuration *domain.Configuration

	payments  *PaymentsAPI
	profiles  *ProfilesAPI
	reporting *ReportingAPI
}

type Option func(*Gateway)

// WithExecutor overrides the transport of every API of the Gateway. The
// override is reapplied each time an API is handed out.
func WithExecutor(e ports.Executor) Option {
	return func(g *Gateway) {
		g.override = e
	}
}

// NewGateway returns a Gateway whose APIs send requests through transport and
// encode payloads with codec. Both are shared by every API.
func NewGateway(logger *slog.Logger, transport ports.Executor, codec ports.Codec, opts ...Option) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Gateway{
		logger:    logger,
		transport: transport,
		codec:     codec,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Configuration returns the shared configuration, building it on first call
// from the merchant id, API version and platform set on the Gateway. Later
// calls to SetMerchantID, SetAPIVersion or SetPlatform do not change it; mutate
// the returned Configuration instead.
func (g *Gateway) Configuration() *domain.Configuration {
	if g.configuration == nil {
		g.configuration = &domain.Configuration{
			MerchantID: g.merchantID,
			Version:    g.apiVersion,
			Platform:   g.platform,
		}
	}
	return g.configuration
}

func (g *Gateway) MerchantID() int        { return g.merchantID }
func (g *Gateway) SetMerchantID(id int)   { g.merchantID = id }
func (g *Gateway) APIVersion() string     { return g.apiVersion }
func (g *Gateway) SetAPIVersion(v string) { g.apiVersion = v }
func (g *Gateway) Platform() string       { return g.platform }
func (g *Gateway) SetPlatform(p string)   { g.platform = p }

func (g *Gateway) PaymentsAPIKey() string { return g.Configuration().PaymentsPasscode }

func (g *Gateway) SetPaymentsAPIKey(key string) { g.Configuration().PaymentsPasscode = key }

func (g *Gateway) ProfilesAPIKey() string { return g.Configuration().ProfilesPasscode }

func (g *Gateway) SetProfilesAPIKey(key string) { g.Configuration().ProfilesPasscode = key }

func (g *Gateway) ReportingAPIKey() string { return g.Configuration().ReportingPasscode }

func (g *Gateway) SetReportingAPIKey(key string) { g.Configuration().ReportingPasscode = key }

func (g *Gateway) Payments() *PaymentsAPI {
	if g.payments == nil {
		g.payments = &PaymentsAPI{capability: g.newCapability(domain.CapabilityPayments)}
	}
	g.refresh(&g.payments.capability)
	return g.payments
}

func (g *Gateway) Profiles() *ProfilesAPI {
	if g.profiles == nil {
		g.profiles = &ProfilesAPI{capability: g.newCapability(domain.CapabilityProfiles)}
	}
	g.refresh(&g.profiles.capability)
	return g.profiles
}

func (g *Gateway) Reporting() *ReportingAPI {
	if g.reporting == nil {
		g.reporting = &ReportingAPI{capability: g.newCapability(domain.CapabilityReporting)}
	}
	g.refresh(&g.reporting.capability)
	return g.reporting
}

func (g *Gateway) newCapability(kind domain.Capability) capability {
	return capability{
		kind:     kind,
		executor: g.transport,
		codec:    g.codec,
		logger:   g.logger.With("capability", string(kind)),
	}
}

// refresh points an API at the current configuration. An unset executor
// override leaves the API's executor as it is.
func (g *Gateway) refresh(c *capability) {
	c.configuration = g.Configuration()
	if g.override != nil {
		c.executor = g.override
	}
}
