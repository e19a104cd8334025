package handlers

import (
	"net/http"

	portssvc "github.com/FranzoniLeo/financial-control/internal/core/ports/services"
	hdto "github.com/FranzoniLeo/financial-control/internal/handlers/dto"
	"github.com/FranzoniLeo/financial-control/internal/middleware"
	"github.com/gin-gonic/gin"
)

// apiTokenHandler handles HTTP requests for API token operations. Each user
// holds at most one token.
type apiTokenHandler struct {
	tokenService portssvc.APITokenSvc
}

func newAPITokenHandler(ts portssvc.APITokenSvc) *apiTokenHandler {
	return &apiTokenHandler{tokenService: ts}
}

// registerAPITokenRoutes registers the API token routes.
func registerAPITokenRoutes(rg *gin.RouterGroup, ts portssvc.APITokenSvc) {
	h := newAPITokenHandler(ts)

	tokens := rg.Group("/tokens")
	{
		tokens.POST("", h.generateToken)
		tokens.POST("/regenerate", h.regenerateToken)
		tokens.DELETE("", h.deleteToken)
	}
}

// generateToken godoc
// @Summary Generate an API token
// @Description Creates the user's API token. The plaintext token is shown exactly once. If a token already exists, its metadata is returned with an empty token field; regenerate to obtain a new secret.
// @Tags tokens
// @Produce json
// @Success 201 {object} dto.CreateAPITokenResponse
// @Success 200 {object} dto.CreateAPITokenResponse "Token already exists"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tokens [post]
func (h *apiTokenHandler) generateToken(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	plaintext, token, err := h.tokenService.GenerateToken(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}

	status := http.StatusCreated
	if plaintext == "" {
		status = http.StatusOK
	}
	c.JSON(status, hdto.CreateAPITokenResponse{
		Token:   plaintext,
		Details: hdto.ToAPITokenResponse(token),
	})
}

// regenerateToken godoc
// @Summary Regenerate the API token
// @Description Replaces the user's API token, invalidating the previous one. The new plaintext token is shown exactly once.
// @Tags tokens
// @Produce json
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tokens/regenerate [post]
func (h *apiTokenHandler) regenerateToken(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	plaintext, token, err := h.tokenService.RegenerateToken(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to regenerate token")
		return
	}

	c.JSON(http.StatusCreated, hdto.CreateAPITokenResponse{
		Token:   plaintext,
		Details: hdto.ToAPITokenResponse(token),
	})
}

// deleteToken godoc
// @Summary Delete the API token
// @Description Revokes the user's API token.
// @Tags tokens
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tokens [delete]
func (h *apiTokenHandler) deleteToken(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.DeleteToken(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to delete token")
		return
	}
	c.Status(http.StatusNoContent)
}
