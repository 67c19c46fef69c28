package domain

// PaymentMethod values accepted by the payments endpoint.
const (
	PaymentMethodCard    = "card"
	PaymentMethodToken   = "token"
	PaymentMethodProfile = "payment_profile"
	PaymentMethodCash    = "cash"
	PaymentMethodCheque  = "cheque"
)

type Card struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVD         string `json:"cvd,omitempty"`
	Complete    *bool  `json:"complete,omitempty"`
}

type Token struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Complete *bool  `json:"complete,omitempty"`
}

type ProfilePayment struct {
	CustomerCode string `json:"customer_code"`
	CardID       int    `json:"card_id"`
	Complete     *bool  `json:"complete,omitempty"`
}

type Address struct {
	Name         string `json:"name,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	Province     string `json:"province,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

// PaymentRequest is the body of a purchase or pre-authorization.
type PaymentRequest struct {
	OrderNumber    string          `json:"order_number,omitempty"`
	Amount         float64         `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	Language       string          `json:"language,omitempty"`
	Comments       string          `json:"comments,omitempty"`
	CustomerIP     string          `json:"customer_ip,omitempty"`
	Card           *Card           `json:"card,omitempty"`
	Token          *Token          `json:"token,omitempty"`
	PaymentProfile *ProfilePayment `json:"payment_profile,omitempty"`
	Billing        *Address        `json:"billing,omitempty"`
	Shipping       *Address        `json:"shipping,omitempty"`
}

// AmountRequest is the body of completions, returns and voids.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}
