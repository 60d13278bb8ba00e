package domain

// MemberRole distinguishes administrators from regular group members.
type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

// Member is the profile document for a savings-group member. Exactly one
// member exists per identity account; MemberID is the account's ID.
type Member struct {
	MemberID   string     `json:"id"`
	FullName   string     `json:"fullName"`
	Username   string     `json:"username"` // unique, case-insensitive
	Email      string     `json:"email"`    // unique, case-insensitive
	Gender     string     `json:"gender,omitempty"`
	Residence  string     `json:"residence,omitempty"`
	Role       MemberRole `json:"role"`
	DateJoined string     `json:"dateJoined"` // calendar date (YYYY-MM-DD), set at creation
	IsActive   bool       `json:"isActive"`   // false blocks login
	AuditFields
}
