package validation_test

import (
	"testing"

	"github.com/akabanda/savings_group_app/internal/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple address", "alice@example.com", true},
		{"subdomain", "alice@mail.example.co.ug", true},
		{"missing tld", "alice@example", false},
		{"missing local part", "@example.com", false},
		{"contains whitespace", "alice @example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.Email(tt.input))
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"alphanumeric", "henry_b1", true},
		{"minimum length", "abc", true},
		{"maximum length", "a2345678901234567890", true},
		{"too short", "ab", false},
		{"too long", "a23456789012345678901", false},
		{"hyphen not allowed", "henry-b", false},
		{"space not allowed", "henry b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.Username(tt.input))
		})
	}
}

func TestDate(t *testing.T) {
	assert.True(t, validation.Date("2024-01-31"))
	assert.False(t, validation.Date("2024-02-30"))
	assert.False(t, validation.Date("31/01/2024"))
	assert.False(t, validation.Date(""))
}

func TestAmount(t *testing.T) {
	assert.True(t, validation.Amount(""))
	assert.True(t, validation.Amount("0"))
	assert.True(t, validation.Amount("1500.50"))
	assert.False(t, validation.Amount("-1"))
	assert.False(t, validation.Amount("abc"))
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantScore int
		wantValid bool
	}{
		{"all checks satisfied", "Str0ng!pass", 5, true},
		{"lowercase and digits only", "abc123", 3, true},
		{"short but mixed", "Ab1!", 4, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.PasswordStrength(tt.input)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantValid, got.IsValid)
			assert.Equal(t, got.IsValid, got.Length)
		})
	}
}

func TestTransaction(t *testing.T) {
	valid := validation.TransactionInput{
		MemberID:     "m1",
		Date:         "2024-01-15",
		Type:         "Saving",
		WeeklySaving: decimal.NewFromInt(1000),
	}
	assert.Empty(t, validation.Transaction(valid))

	t.Run("missing required fields", func(t *testing.T) {
		errs := validation.Transaction(validation.TransactionInput{})
		assert.Contains(t, errs, "memberId")
		assert.Contains(t, errs, "date")
		assert.Contains(t, errs, "type")
	})

	t.Run("saving with no amounts", func(t *testing.T) {
		in := valid
		in.WeeklySaving = decimal.Zero
		errs := validation.Transaction(in)
		assert.Equal(t, "At least one saving amount is required", errs["amount"])
	})

	t.Run("withdrawal requires positive amount", func(t *testing.T) {
		in := validation.TransactionInput{
			MemberID: "m1",
			Date:     "2024-01-15",
			Type:     "Withdrawal",
		}
		errs := validation.Transaction(in)
		assert.Equal(t, "Valid withdrawal amount is required", errs["withdrawal"])

		in.Withdrawal = decimal.NewFromInt(300)
		assert.Empty(t, validation.Transaction(in))
	})
}

func TestMember(t *testing.T) {
	valid := validation.MemberInput{
		FullName: "Alice Nansubuga",
		Username: "alice_n",
		Email:    "alice@example.com",
		Password: "secret1",
	}
	assert.Empty(t, validation.Member(valid))

	in := validation.MemberInput{FullName: "A", Username: "a", Email: "nope", Password: "123"}
	errs := validation.Member(in)
	assert.Len(t, errs, 4)
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"script block stripped", "<script>alert(1)</script>Hello", "Hello"},
		{"script with attributes", `<script type="text/javascript">x()</script>ok`, "ok"},
		{"quoted event handler stripped", `<img onerror="steal()" src=x>`, `<img  src=x>`},
		{"single quoted handler stripped", `<b onclick='x()'>hi</b>`, `<b >hi</b>`},
		{"plain text untouched", "Kampala, Uganda", "Kampala, Uganda"},
		{"whitespace trimmed", "  hello  ", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.SanitizeInput(tt.input))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "", validation.FormatValidationErrors(nil))
	got := validation.FormatValidationErrors(map[string]string{
		"b": "second",
		"a": "first",
	})
	assert.Equal(t, "first, second", got)
}
