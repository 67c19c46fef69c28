package domain

// CardInfo is the masked card summary returned with a transaction.
type CardInfo struct {
	CardType     string `json:"card_type,omitempty"`
	LastFour     string `json:"last_four,omitempty"`
	AddressMatch int    `json:"address_match,omitempty"`
	PostalResult int    `json:"postal_result,omitempty"`
	CVDResult    int    `json:"cvd_result,omitempty"`
}

// Transaction is a single payment as reported by the gateway.
type Transaction struct {
	ID                    string    `json:"id"`
	AuthorizingMerchantID int       `json:"authorizing_merchant_id,omitempty"`
	Approved              string    `json:"approved,omitempty"`
	MessageID             string    `json:"message_id,omitempty"`
	Message               string    `json:"message,omitempty"`
	AuthCode              string    `json:"auth_code,omitempty"`
	Created               string    `json:"created,omitempty"`
	OrderNumber           string    `json:"order_number,omitempty"`
	Type                  string    `json:"type,omitempty"`
	PaymentMethod         string    `json:"payment_method,omitempty"`
	Amount                float64   `json:"amount"`
	TotalCompletions      float64   `json:"total_completions,omitempty"`
	TotalRefunds          float64   `json:"total_refunds,omitempty"`
	Card                  *CardInfo `json:"card,omitempty"`
	Billing               *Address  `json:"billing,omitempty"`
	Shipping              *Address  `json:"shipping,omitempty"`
}
