package handlers

import (
	"net/http"

	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	"github.com/FranzoniLeo/financial-control/internal/dto"
	"github.com/FranzoniLeo/financial-control/internal/middleware"
	"github.com/gin-gonic/gin"
)

// investmentHandler handles HTTP requests for investments and categories,
// both scoped under a wallet.
type investmentHandler struct {
	investmentService portssvc.InvestmentSvc
}

func newInvestmentHandler(is portssvc.InvestmentSvc) *investmentHandler {
	return &investmentHandler{investmentService: is}
}

// registerInvestmentRoutes registers investment and category routes nested
// under a specific wallet.
func registerInvestmentRoutes(rg *gin.RouterGroup, is portssvc.InvestmentSvc) {
	h := newInvestmentHandler(is)

	investments := rg.Group("/investments")
	{
		investments.POST("", h.createInvestment)
		investments.GET("", h.listInvestments)
	}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}
}

// createInvestment godoc
// @Summary Create an investment
// @Description Creates an investment under the wallet, attached to one of the wallet's categories.
// @Tags investments
// @Accept json
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Param investment body dto.CreateInvestmentRequest true "Investment details"
// @Success 201 {object} dto.InvestmentResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id}/investments [post]
func (h *investmentHandler) createInvestment(c *gin.Context) {
	var req dto.CreateInvestmentRequest
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

	investment, err := h.investmentService.CreateInvestment(c.Request.Context(), walletID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create investment")
		return
	}

	balance, err := h.investmentService.GetInvestmentBalance(c.Request.Context(), investment.InvestmentID, userID)
	if err != nil {
		respondError(c, err, "Failed to compute investment balance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvestmentResponse(investment, balance))
}

// listInvestments godoc
// @Summary List a wallet's investments
// @Description Retrieves the wallet's investments, each with its derived balance (deposits minus withdrawals).
// @Tags investments
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Success 200 {array} dto.InvestmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id}/investments [get]
func (h *investmentHandler) listInvestments(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	walletID := c.Param("wallet_id")

	investments, err := h.investmentService.ListInvestments(c.Request.Context(), walletID, userID)
	if err != nil {
		respondError(c, err, "Failed to list investments")
		return
	}

	resp := make([]dto.InvestmentResponse, len(investments))
	for i := range investments {
		balance, err := h.investmentService.GetInvestmentBalance(c.Request.Context(), investments[i].InvestmentID, userID)
		if err != nil {
			respondError(c, err, "Failed to compute investment balance")
			return
		}
		resp[i] = dto.ToInvestmentResponse(&investments[i], balance)
	}
	c.JSON(http.StatusOK, resp)
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category under the wallet, optionally nested under a parent category of the same wallet.
// @Tags categories
// @Accept json
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id}/categories [post]
func (h *investmentHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
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

	category, err := h.investmentService.CreateCategory(c.Request.Context(), walletID, userID, req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List a wallet's categories
// @Description Retrieves the wallet's categories.
// @Tags categories
// @Produce json
// @Param wallet_id path string true "Wallet ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{wallet_id}/categories [get]
func (h *investmentHandler) listCategories(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	walletID := c.Param("wallet_id")

	categories, err := h.investmentService.ListCategories(c.Request.Context(), walletID, userID)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}

	resp := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, resp)
}
