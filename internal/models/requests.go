package models

// RegisterRequest defines the structure for registration requests
type RegisterRequest struct {
	Plate string `json:"plate" binding:"required"`
}

// ShareRequest defines the structure for share bonus requests
type ShareRequest struct {
	Plate string `json:"plate"`
}

// RedeemRequest defines the structure for prize redemption requests.
// Fields are not validated up front; an unknown or empty plate is reported
// as not found by the lookup itself.
type RedeemRequest struct {
	Plate     string `json:"plate"`
	PrizeText string `json:"prizeText"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *Participant `json:"user"`
}

// ShareResponse is returned after a bonus spin is granted
type ShareResponse struct {
	Message        string `json:"message"`
	SpinsAvailable int    `json:"spinsAvailable"`
}
