package dto

import (
	"time"

	"olibranch/internal/models"

	"github.com/google/uuid"
)

// LinkBankRequest is the bank connection payload
type LinkBankRequest struct {
	BankName string `json:"bankName" validate:"required,max=100"`
}

// LinkedBankResponse is one bank connection
type LinkedBankResponse struct {
	ID          uuid.UUID `json:"id"`
	BankName    string    `json:"bankName"`
	AccountMask string    `json:"accountMask,omitempty"`
	LinkedAt    time.Time `json:"linkedAt"`
	LastSyncAt  time.Time `json:"lastSync"`
}

// NewLinkedBankResponse maps a linked bank onto the response shape
func NewLinkedBankResponse(b *models.LinkedBank) LinkedBankResponse {
	return LinkedBankResponse{
		ID:          b.ID,
		BankName:    b.BankName,
		AccountMask: b.AccountMask,
		LinkedAt:    b.LinkedAt,
		LastSyncAt:  b.LastSyncAt,
	}
}

// ListBanksResponse is the linked-bank listing
type ListBanksResponse struct {
	Banks []LinkedBankResponse `json:"banks"`
}

// TransactionResponse is one mock ledger line
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	FeeType     string    `json:"feeType,omitempty"`
}

// NewTransactionResponse maps a ledger row onto the response shape
func NewTransactionResponse(t *models.BankTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.PostedOn.Format("2006-01-02"),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Category:    t.Category,
		FeeType:     t.FeeType,
	}
}

// ListTransactionsResponse is the mock ledger listing
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
