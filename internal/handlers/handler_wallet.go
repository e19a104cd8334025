package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/FranzoniLeo/financial-control/internal/middleware"
	"github.com/gin-gonic/gin"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService    portssvc.WalletSvc
	reportingService portssvc.ReportingSvc
}

func newWalletHandler(ws portssvc.WalletSvc, rs portssvc.ReportingSvc) *walletHandler {
	return &walletHandler{walletService: ws, reportingService: rs}
}

// registerWalletRoutes registers wallet routes and the transaction,
// investment and category routes nested under a specific wallet.
func registerWalletRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWalletHandler(services.Wallet, services.Reporting)

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("", h.listWallets)
		// Static route first; gin prioritizes it over the :wallet_id match.
		wallets.GET("/summary", h.walletSummary)
	}

	walletSpecific := rg.Group("/wallets/:wallet_id")
	{
		walletSpecific.GET("", h.getWallet)
		walletSpecific.PUT("", h.renameWallet)
		walletSpecific.DELETE("", h.deleteWallet)

		registerWalletTransactionRoutes(walletSpecific, services.Transaction)
		registerInvestmentRoutes(walletSpecific, services.Investment)
	}
}

// createWallet godoc
// @Summary Create a new wallet
// @Description Creates a wallet owned by the authenticated user. Names are unique per user, case-sensitively.
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create wallet")
		return
	}

	logger.Info("Wallet created", slog.String("wallet_id", wallet.WalletID))
	balance, err := h.walletService.GetWalletBalance(c.Request.Context(), wallet.WalletID, userID)
	if err != nil {
		respondError(c, err, "Failed to compute wallet balance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet, balance))
}

// listWallets godoc
// @Summary List the user's wallets
// @Description Retrieves every wallet the authenticated user owns, each with its derived balance.
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.ListWalletsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// The summary already pairs every wallet with its balance from one
	// transaction snapshot; reuse it for the listing.
	summary, err := h.reportingService.WalletSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list wallets")
		return
	}

	resp := dto.ListWalletsResponse{Wallets: make([]dto.WalletResponse, len(summary.Wallets))}
	for i, wb := range summary.Wallets {
		resp.Wallets[i] = dto.ToWalletResponse(&wb.Wallet, wb.Balance)
	}
	c.JSON(http.StatusOK, resp)
}

// walletSummary godoc
// @Summary Wallet dashboard summary
// @Description Rolls up the user's wallets: count, combined balance, and per-wallet balances.
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.WalletSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/summary [get]
func (h *walletHandler) walletSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.WalletSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to build wallet summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletSummaryResponse(summary))
}

// getWallet godoc
// @Summary Get a wallet
// @Description Retrieves one wallet with its derived balance. Wallets of other users are reported as not found.
// @Tags wallets
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	walletID := c.Param("wallet_id")

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), walletID, userID)
	if err != nil {
		respondError(c, err, "Failed to get wallet")
		return
	}
	balance, err := h.walletService.GetWalletBalance(c.Request.Context(), walletID, userID)
	if err != nil {
		respondError(c, err, "Failed to compute wallet balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet, balance))
}

// renameWallet godoc
// @Summary Rename a wallet
// @Description Changes a wallet's display name. All validation failures are reported together; on any failure the stored name is untouched.
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Param wallet body dto.RenameWalletRequest true "New name"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /wallets/{wallet_id} [put]
func (h *walletHandler) renameWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RenameWalletRequest
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

	wallet, err := h.walletService.RenameWallet(c.Request.Context(), walletID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to rename wallet")
		return
	}

	logger.Info("Wallet renamed", slog.String("wallet_id", walletID))
	balance, err := h.walletService.GetWalletBalance(c.Request.Context(), walletID, userID)
	if err != nil {
		respondError(c, err, "Failed to compute wallet balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet, balance))
}

// deleteWallet godoc
// @Summary Delete a wallet
// @Description Deletes a wallet and everything under it: categories, investments, and all transactions.
// @Tags wallets
// @Param wallet_id path string true "Wallet ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id} [delete]
func (h *walletHandler) deleteWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	walletID := c.Param("wallet_id")

	if err := h.walletService.DeleteWallet(c.Request.Context(), walletID, userID); err != nil {
		respondError(c, err, "Failed to delete wallet")
		return
	}

	logger.Info("Wallet deleted", slog.String("wallet_id", walletID))
	c.Status(http.StatusNoContent)
}
