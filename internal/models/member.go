package models

// Member is the database row for a member profile document.
// MemberID is the identity account's ID, so the two are created together.
type Member struct {
	MemberID   string `db:"member_id"`
	FullName   string `db:"full_name"`
	Username   string `db:"username"`
	Email      string `db:"email"`
	Gender     string `db:"gender"`
	Residence  string `db:"residence"`
	Role       string `db:"role"`
	DateJoined string `db:"date_joined"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
