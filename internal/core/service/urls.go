package service

import (
	"strings"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/domain"
)

const (
	placeholderVersion  = "{v}"
	placeholderPlatform = "{p}"
	placeholderID       = "{id}"
)

const (
	baseURL = "https://{p}.na.bambora.com/{v}"

	PaymentsURL    = baseURL + "/payments"
	PaymentURL     = PaymentsURL + "/{id}"
	CompletionsURL = PaymentURL + "/completions"
	ReturnsURL     = PaymentURL + "/returns"
	VoidURL        = PaymentURL + "/void"
	ProfilesURL    = baseURL + "/profiles"
	ProfileURL     = ProfilesURL + "/{id}"
	ReportsURL     = baseURL + "/reports"
)

// ResolveURL fills the version, platform and id placeholders of template.
// Values are substituted as-is; nothing is escaped.
func ResolveURL(cfg *domain.Configuration, template, id string) string {
	version := "v" + domain.DefaultVersion
	platform := domain.DefaultPlatform
	if cfg != nil {
		if cfg.Version != "" {
			version = "v" + cfg.Version
		}
		if cfg.Platform != "" {
			platform = cfg.Platform
		}
	}

	return strings.NewReplacer(
		placeholderVersion, version,
		placeholderPlatform, platform,
		placeholderID, id,
	).Replace(template)
}
