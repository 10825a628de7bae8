// file: model/request.go

package model

// LoginRequest defines the payload for the auth collaborator's login exchange.
// It includes validation tags to ensure data integrity at the entry point.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TransferRequest defines the payload for a money transfer. The source
// account is not part of the request: it is always resolved from the
// current account collection by the transaction service.
type TransferRequest struct {
	TargetAccountID int     `json:"targetAccountId" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
}
