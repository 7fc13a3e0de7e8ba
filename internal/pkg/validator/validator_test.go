package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-02-17", "2024-02-29"}
	invalid := []string{"2026-02-30", "17-02-2026", "2026-02-17T00:00:00Z", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

type sampleRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Week   string `json:"week_start" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"notblank"`
	Amount string `json:"amount" validate:"omitempty,numeric"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(sampleRequest{UserID: "u1", Week: "2026-02-16", Reason: "late shift", Amount: "1500"})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(sampleRequest{Week: "16/02/2026", Reason: "   ", Amount: "abc"})
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)

	details := errs.ToMap()
	assert.Equal(t, "is required", details["user_id"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", details["week_start"])
	assert.Equal(t, "is required", details["reason"])
	assert.Equal(t, "must be a number", details["amount"])
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be greater than 0"},
		{Field: "reason", Message: "is required"},
	}
	assert.Equal(t, "amount: must be greater than 0; reason: is required", errs.Error())
}
