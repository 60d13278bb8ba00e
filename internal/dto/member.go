package dto

import (
	"github.com/akabanda/savings_group_app/internal/core/domain"
)

// CreateMemberRequest carries the data needed to register a new member.
type CreateMemberRequest struct {
	FullName  string `json:"fullName" binding:"required"`
	Username  string `json:"username" binding:"required,alphanumunderscore,min=3,max=20"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"omitempty,min=6"`
	Gender    string `json:"gender"`
	Residence string `json:"residence"`
}

// CreateMemberResponse is the payload returned after registering a member.
// InitialPassword is set only when the server generated the password; it is
// shown once and never stored in plain text.
type CreateMemberResponse struct {
	MemberResponse
	InitialPassword string `json:"initialPassword,omitempty"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateMemberRequest struct {
	FullName  *string `json:"fullName"`
	Username  *string `json:"username" binding:"omitempty,alphanumunderscore,min=3,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Gender    *string `json:"gender"`
	Residence *string `json:"residence"`
	IsActive  *bool   `json:"isActive"`
}

// ListMembersParams defines query parameters for listing members.
// Status is "active", "inactive" or empty for all.
type ListMembersParams struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// MemberResponse is the API shape of a member profile.
type MemberResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Gender     string `json:"gender,omitempty"`
	Residence  string `json:"residence,omitempty"`
	Role       string `json:"role"`
	DateJoined string `json:"dateJoined"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt"`
	CreatedBy  string `json:"createdBy"`
}

// ToMemberResponse converts a domain.Member to its API shape.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:         m.MemberID,
		FullName:   m.FullName,
		Username:   m.Username,
		Email:      m.Email,
		Gender:     m.Gender,
		Residence:  m.Residence,
		Role:       string(m.Role),
		DateJoined: m.DateJoined,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedBy:  m.CreatedBy,
	}
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts a slice of domain.Member to the list DTO.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: responses}
}

// MemberSuggestion is the compact member record returned by the suggestions
// endpoint.
type MemberSuggestion struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SuggestionsResponse wraps member suggestions for an autocomplete query.
type SuggestionsResponse struct {
	Suggestions []MemberSuggestion `json:"suggestions"`
	Query       string             `json:"query"`
}

// ToSuggestionsResponse converts matched members into the suggestions DTO.
func ToSuggestionsResponse(members []domain.Member, query string) SuggestionsResponse {
	suggestions := make([]MemberSuggestion, len(members))
	for i, m := range members {
		suggestions[i] = MemberSuggestion{
			ID:       m.MemberID,
			FullName: m.FullName,
			Username: m.Username,
			Email:    m.Email,
		}
	}
	return SuggestionsResponse{Suggestions: suggestions, Query: query}
}
