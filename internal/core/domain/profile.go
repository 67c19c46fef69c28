package domain

// ProfileRequest creates or updates a secure payment profile.
type ProfileRequest struct {
	Card     *Card    `json:"card,omitempty"`
	Token    *Token   `json:"token,omitempty"`
	Billing  *Address `json:"billing,omitempty"`
	Language string   `json:"language,omitempty"`
	Comment  string   `json:"comment,omitempty"`
}

// ProfileResponse is returned by profile create, update and delete calls.
type ProfileResponse struct {
	Code         int    `json:"code"`
	Message      string `json:"message"`
	CustomerCode string `json:"customer_code"`
}

// PaymentProfile is a stored customer profile.
type PaymentProfile struct {
	CustomerCode string    `json:"customer_code"`
	Status       string    `json:"status,omitempty"`
	Language     string    `json:"language,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	Card         *CardInfo `json:"card,omitempty"`
	Billing      *Address  `json:"billing,omitempty"`
	Created      string    `json:"created,omitempty"`
	Modified     string    `json:"modified,omitempty"`
}
