// Package validation holds the pure input validators used on write paths.
// All functions are total: they return a boolean or an error map, never fail.
package validation

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const minPasswordLength = 6

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

	upperRegex   = regexp.MustCompile(`[A-Z]`)
	lowerRegex   = regexp.MustCompile(`[a-z]`)
	numberRegex  = regexp.MustCompile(`\d`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	scriptTagRegex = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	// Inline event handlers, quoted or bare.
	onHandlerDQRegex   = regexp.MustCompile(`(?i)on\w+=\s*"[^"]*"`)
	onHandlerSQRegex   = regexp.MustCompile(`(?i)on\w+=\s*'[^']*'`)
	onHandlerBareRegex = regexp.MustCompile(`(?i)on\w+=\s*[^>\s]*`)
)

// Email reports whether s matches a simple local@domain.tld pattern.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Username reports whether s is 3-20 characters of letters, digits or
// underscores.
func Username(s string) bool {
	return usernameRegex.MatchString(s)
}

// Password reports whether s meets the minimum length requirement.
func Password(s string) bool {
	return len(s) >= minPasswordLength
}

// Name reports whether s is at least two characters after trimming.
func Name(s string) bool {
	return len(strings.TrimSpace(s)) >= 2
}

// Required reports whether s is non-empty after trimming.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Date reports whether s is a valid ISO calendar date (YYYY-MM-DD).
func Date(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Amount reports whether s is empty or parses as a non-negative number.
func Amount(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// Strength describes which password strength checks a candidate satisfies.
// Score counts the satisfied checks (max 5); IsValid requires only the
// minimum length.
type Strength struct {
	IsValid        bool `json:"isValid"`
	Length         bool `json:"length"`
	HasUpperCase   bool `json:"hasUpperCase"`
	HasLowerCase   bool `json:"hasLowerCase"`
	HasNumbers     bool `json:"hasNumbers"`
	HasSpecialChar bool `json:"hasSpecialChar"`
	Score          int  `json:"score"`
}

// PasswordStrength evaluates the strength checks for a password candidate.
func PasswordStrength(s string) Strength {
	st := Strength{
		Length:         len(s) >= minPasswordLength,
		HasUpperCase:   upperRegex.MatchString(s),
		HasLowerCase:   lowerRegex.MatchString(s),
		HasNumbers:     numberRegex.MatchString(s),
		HasSpecialChar: specialRegex.MatchString(s),
	}
	st.IsValid = st.Length
	for _, ok := range []bool{st.Length, st.HasUpperCase, st.HasLowerCase, st.HasNumbers, st.HasSpecialChar} {
		if ok {
			st.Score++
		}
	}
	return st
}

// TransactionInput is the transaction shape checked before a write.
type TransactionInput struct {
	MemberID     string
	Date         string
	Type         string
	WeeklySaving decimal.Decimal
	Munomukabi   decimal.Decimal
	OtherSaving  decimal.Decimal
	Withdrawal   decimal.Decimal
}

// Transaction validates a transaction input, returning a map of field name
// to error message. An empty map means the input is valid.
func Transaction(in TransactionInput) map[string]string {
	errs := map[string]string{}

	if !Required(in.MemberID) {
		errs["memberId"] = "Member selection is required"
	}
	if !Date(in.Date) {
		errs["date"] = "Valid date is required"
	}
	if !Required(in.Type) {
		errs["type"] = "Transaction type is required"
	}

	switch in.Type {
	case "Saving":
		total := in.WeeklySaving.Add(in.Munomukabi).Add(in.OtherSaving)
		if !total.IsPositive() {
			errs["amount"] = "At least one saving amount is required"
		}
	case "Withdrawal":
		if !in.Withdrawal.IsPositive() {
			errs["withdrawal"] = "Valid withdrawal amount is required"
		}
	}

	return errs
}

// MemberInput is the member registration shape checked before a write.
type MemberInput struct {
	FullName string
	Username string
	Email    string
	Password string
}

// Member validates a member registration input, returning a map of field
// name to error message.
func Member(in MemberInput) map[string]string {
	errs := map[string]string{}

	if !Name(in.FullName) {
		errs["fullName"] = "Full name must be at least 2 characters long"
	}
	if !Username(in.Username) {
		errs["username"] = "Username must be 3-20 characters (letters, numbers, underscores only)"
	}
	if !Email(in.Email) {
		errs["email"] = "Valid email address is required"
	}
	if !Password(in.Password) {
		errs["password"] = "Password must be at least 6 characters long"
	}

	return errs
}

// SanitizeInput trims free text and strips script blocks plus inline event
// handler attributes. Defense in depth against stored markup, not a full
// HTML sanitizer.
func SanitizeInput(s string) string {
	out := strings.TrimSpace(s)
	out = scriptTagRegex.ReplaceAllString(out, "")
	out = onHandlerDQRegex.ReplaceAllString(out, "")
	out = onHandlerSQRegex.ReplaceAllString(out, "")
	out = onHandlerBareRegex.ReplaceAllString(out, "")
	return out
}

// FormatValidationErrors joins an error map into a single message with a
// deterministic field order.
func FormatValidationErrors(errs map[string]string) string {
	if len(errs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = errs[k]
	}
	return strings.Join(msgs, ", ")
}
