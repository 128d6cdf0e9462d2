/**
 * @description
 * This file defines the request and response DTOs for the Remote Account API.
 * Every endpoint gets an explicit typed schema so response bodies are
 * validated and coerced at the boundary instead of flowing through as
 * untyped maps.
 */

package domain

// RegisterRequest is the payload for POST /register.
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	PIN         string `json:"pin" validate:"required,len=4,numeric"`
}

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	PIN         string `json:"pin" validate:"required,len=4,numeric"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	UserID string `json:"user_id"`
}

// AccountsResponse is the body of GET /user/{id}/accounts.
type AccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

// TransactionsResponse is the body of GET /user/{id}/transactions.
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// AddAccountRequest is the payload for POST /user/{id}/add-account.
type AddAccountRequest struct {
	Operator Operator `json:"operator" validate:"required"`
}

// TransferRequest is the payload for POST /transfer.
type TransferRequest struct {
	UserID            string   `json:"user_id" validate:"required"`
	SourceOperator    Operator `json:"source_operator" validate:"required"`
	DestinationNumber string   `json:"destination_number" validate:"required"`
	Amount            int64    `json:"amount" validate:"required,gt=0"`
}

// PurchaseRequest is the payload for POST /forfait.
type PurchaseRequest struct {
	UserID            string   `json:"user_id" validate:"required"`
	Operator          Operator `json:"operator" validate:"required"`
	BeneficiaryNumber string   `json:"beneficiary_number" validate:"required"`
	PackageID         string   `json:"package_id" validate:"required"`
	PackageType       string   `json:"package_type" validate:"required,oneof=call internet"`
}

// APIMessage is the body carried by non-2xx responses.
type APIMessage struct {
	Message string `json:"message"`
}
