package handlers

import (
	"net/http"

	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// suggestionHandler serves the member autocomplete endpoint.
type suggestionHandler struct {
	memberService portssvc.MemberSvcFacade
}

// registerSuggestionRoutes registers the autocomplete routes.
func registerSuggestionRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := &suggestionHandler{memberService: memberService}
	rg.GET("/suggestions/members", h.suggestMembers)
}

// suggestMembers godoc
// @Summary Suggest members
// @Description Returns up to ten members whose name, username or email contains the query. An empty query yields no suggestions.
// @Tags suggestions
// @Produce  json
// @Param   q query string false "Substring query"
// @Success 200 {object} dto.SuggestionsResponse
// @Security BearerAuth
// @Router /suggestions/members [get]
func (h *suggestionHandler) suggestMembers(c *gin.Context) {
	query := c.Query("q")

	members, err := h.memberService.SuggestMembers(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch suggestions")
		return
	}

	c.JSON(http.StatusOK, dto.ToSuggestionsResponse(members, query))
}
