package dto

import "github.com/Dev-BrunoOliveira/CARTEIRA/internal/models"

// AddTransactionRequest is the payload for recording a ledger entry. Amount
// travels as a string so it can be parsed into an exact decimal instead of a
// float.
type AddTransactionRequest struct {
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount" validate:"required,money_amount"`
	Kind        string `json:"kind" validate:"required,transaction_kind"`
	OccurredAt  string `json:"occurred_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SetActiveMonthRequest selects the calendar month filter (0 = January)
type SetActiveMonthRequest struct {
	Month *int `json:"month" validate:"required,min=0,max=11"`
}

// TransactionListResponse is the filtered ledger view
type TransactionListResponse struct {
	ActiveMonth  int                  `json:"active_month"`
	Count        int                  `json:"count"`
	Transactions []models.Transaction `json:"transactions"`
}
