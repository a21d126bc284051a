package dto

// SpinRequest is the wheel entry form. Validation happens in the service so
// the rejection messages stay exactly what the site displays.
type SpinRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Consent bool   `json:"consent"`
}

type SpinResponse struct {
	Success     bool   `json:"success"`
	OfferLabel  string `json:"offerLabel"`
	Code        string `json:"code"`
	Link        string `json:"link"`
	AlreadySent bool   `json:"alreadySent,omitempty"`
}
