package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/FranzoniLeo/financial-control/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions and the
// reports computed over them.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
	reportingService   portssvc.ReportingSvc
}

func newTransactionHandler(ts portssvc.TransactionSvc, rs portssvc.ReportingSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts, reportingService: rs}
}

// registerWalletTransactionRoutes registers transaction routes nested under
// a specific wallet (creation and direct listing).
func registerWalletTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvc) {
	h := newTransactionHandler(ts, nil)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listWalletTransactions)
	}
}

// registerTransactionRoutes registers top-level transaction routes: the
// cross-wallet listing, the reports, and single-transaction operations.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvc, rs portssvc.ReportingSvc) {
	h := newTransactionHandler(ts, rs)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listUserTransactions)
		txns.GET("/monthly_summary", h.monthlySummary)
		txns.GET("/income", h.incomeSummary)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a ledger entry under the wallet, or under one of its investments when investmentID is set.
// @Tags transactions
// @Accept json
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	walletID := c.Param("wallet_id")

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), walletID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listWalletTransactions godoc
// @Summary List a wallet's transactions
// @Description Retrieves the wallet's direct transactions, newest first, paginated by token.
// @Tags transactions
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id}/transactions [get]
func (h *transactionHandler) listWalletTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	walletID := c.Param("wallet_id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListWalletTransactions(c.Request.Context(), walletID, userID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		NextToken:    nextToken,
	})
}

// listUserTransactions godoc
// @Summary List all of the user's transactions
// @Description Retrieves every transaction the user owns, across wallets and investments, optionally narrowed by type. An unknown type yields an empty list.
// @Tags transactions
// @Produce json
// @Param type query string false "Transaction type filter (deposit, withdrawal, dividend)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listUserTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.transactionService.ListUserTransactions(c.Request.Context(), userID, c.Query("type"))
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
	})
}

// monthlySummary godoc
// @Summary Current month summary
// @Description Per-type sums for the current calendar month over all of the user's transactions.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/monthly_summary [get]
func (h *transactionHandler) monthlySummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.MonthlySummary(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		respondError(c, err, "Failed to build monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}

// incomeSummary godoc
// @Summary Income summary
// @Description Income (investment deposits plus wallet dividends) over the standard windows: total, current month, previous month, year to date.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.IncomeSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/income [get]
func (h *transactionHandler) incomeSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.IncomeSummary(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		respondError(c, err, "Failed to build income summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeSummaryResponse(summary))
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves one transaction. Transactions of other users are reported as not found.
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transaction_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the transaction's amount, type, date and description. The update is all-or-nothing.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "New values"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("transaction_id"), userID, req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes one ledger entry permanently.
// @Tags transactions
// @Param transaction_id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("transaction_id"), userID); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
