package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/akabanda/savings_group_app/internal/core/ports/services"
	"github.com/akabanda/savings_group_app/internal/dto"
	"github.com/akabanda/savings_group_app/internal/middleware"
	"github.com/akabanda/savings_group_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to member profiles.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{
		memberService: ms,
	}
}

// RegisterMemberRoutes registers all member-related routes.
func RegisterMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
		members.POST("", h.createMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// createMember godoc
// @Summary Register a new member
// @Description Creates an identity account and a member profile in one step.
// @Tags members
// @Accept  json
// @Produce  json
// @Param   member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.CreateMemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// When no password is supplied the server generates an initial one and
	// returns it once in the response.
	var initialPassword string
	if req.Password == "" {
		generated, err := utils.GenerateMemberPassword()
		if err != nil {
			logger.Error("Failed to generate initial password", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate initial password"})
			return
		}
		req.Password = generated
		initialPassword = generated
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "Failed to create member")
		return
	}

	logger.Info("Member created", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.CreateMemberResponse{
		MemberResponse:  dto.ToMemberResponse(member),
		InitialPassword: initialPassword,
	})
}

// getMember godoc
// @Summary Get a member by ID
// @Tags members
// @Produce  json
// @Param   id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	memberID := c.Param("id")

	member, err := h.memberService.GetMemberByID(c.Request.Context(), memberID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Description Lists member profiles ordered by full name, optionally filtered by status.
// @Tags members
// @Produce  json
// @Param   status query string false "Filter by status" Enums(active, inactive)
// @Success 200 {object} dto.ListMembersResponse
// @Failure 400 {object} ErrorResponse "Invalid status filter"
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// updateMember godoc
// @Summary Update a member
// @Description Applies a partial update; omitted fields keep their stored values.
// @Tags members
// @Accept  json
// @Produce  json
// @Param   id path string true "Member ID"
// @Param   member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 409 {object} ErrorResponse "Username or email already taken"
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	memberID := c.Param("id")

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), memberID, req, updaterID)
	if err != nil {
		respondServiceError(c, err, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Delete a member
// @Description Removes the profile permanently. The member's transactions and identity account are kept.
// @Tags members
// @Produce  json
// @Param   id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	memberID := c.Param("id")

	deleterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID, deleterID); err != nil {
		respondServiceError(c, err, "Failed to delete member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
