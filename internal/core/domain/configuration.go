// Package domain defines the configuration and payload shapes exchanged with the Bambora gateway.
package domain

// Capability identifies one of the gateway API groups. Each group has its own passcode.
type Capability string

const (
	CapabilityPayments  Capability = "payments"
	CapabilityProfiles  Capability = "profiles"
	CapabilityReporting Capability = "reporting"
)

const (
	DefaultVersion  = "1"
	DefaultPlatform = "www"
)

// Configuration holds the merchant identity and the passcodes used to sign requests.
// Empty strings mean "unset".
type Configuration struct {
	MerchantID        int
	PaymentsPasscode  string
	ProfilesPasscode  string
	ReportingPasscode string
	Version           string
	Platform          string
}

// Passcode returns the passcode that authorizes calls to the given capability.
func (c *Configuration) Passcode(capability Capability) string {
	switch capability {
	case CapabilityPayments:
		return c.PaymentsPasscode
	case CapabilityProfiles:
		return c.ProfilesPasscode
	case CapabilityReporting:
		return c.ReportingPasscode
	default:
		return ""
	}
}
