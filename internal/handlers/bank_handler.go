package handlers

import (
	"net/http"

	"olibranch/internal/dto"
	"olibranch/internal/errors"
	"olibranch/internal/repositories"
	"olibranch/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BankHandler handles bank linking HTTP requests
type BankHandler struct {
	bankService services.BankServiceInterface
}

// NewBankHandler creates a new bank handler
func NewBankHandler(bankService services.BankServiceInterface) *BankHandler {
	return &BankHandler{bankService: bankService}
}

// LinkBank connects a bank and seeds the demo ledger
// @Summary Link bank
// @Description Connect a bank account. The demo statement is seeded and an initial fee analysis stored.
// @Tags Banks
// @Accept json
// @Produce json
// @Param request body dto.LinkBankRequest true "Bank to link"
// @Success 201 {object} dto.LinkedBankResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 409 {object} errors.ErrorResponse "BANK_003 - Bank already linked"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /banks [post]
func (h *BankHandler) LinkBank(c echo.Context) error {
	var req dto.LinkBankRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	bank, err := h.bankService.LinkBank(req.BankName)
	if err != nil {
		if err == repositories.ErrBankAlreadyLinked {
			return SendError(c, errors.BankAlreadyLinked)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewLinkedBankResponse(bank))
}

// UnlinkBank disconnects a bank
// @Summary Unlink bank
// @Description Disconnect a bank. Removing the last connection clears the ledger and stored analysis.
// @Tags Banks
// @Produce json
// @Param id path string true "Linked bank ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "BANK_002 - Invalid bank ID"
// @Failure 404 {object} errors.ErrorResponse "BANK_001 - Bank not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /banks/{id} [delete]
func (h *BankHandler) UnlinkBank(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.BankInvalidID)
	}

	if err := h.bankService.UnlinkBank(id); err != nil {
		if err == repositories.ErrBankNotFound {
			return SendError(c, errors.BankNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Bank unlinked"})
}

// ListBanks returns all linked banks
// @Summary List linked banks
// @Tags Banks
// @Produce json
// @Success 200 {object} dto.ListBanksResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /banks [get]
func (h *BankHandler) ListBanks(c echo.Context) error {
	banks, err := h.bankService.ListBanks()
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.LinkedBankResponse, 0, len(banks))
	for i := range banks {
		responses = append(responses, dto.NewLinkedBankResponse(&banks[i]))
	}

	return c.JSON(http.StatusOK, dto.ListBanksResponse{Banks: responses})
}

// ListTransactions returns the current mock ledger
// @Summary List bank transactions
// @Tags Banks
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /banks/transactions [get]
func (h *BankHandler) ListTransactions(c echo.Context) error {
	transactions, err := h.bankService.Transactions()
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, dto.NewTransactionResponse(&transactions[i]))
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: responses})
}
