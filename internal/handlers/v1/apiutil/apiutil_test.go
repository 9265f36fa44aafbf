package apiutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spend-tracker/internal/category"
	"github.com/carson-networks/spend-tracker/internal/service"
)

func TestMoney_MarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		Amount Money `json:"amount"`
	}{Amount: NewMoney(decimal.RequireFromString("12.50"))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 12.5}`, string(out))
}

func TestMoney_UnmarshalsNumber(t *testing.T) {
	var body struct {
		Amount *Money `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 19.99}`), &body))

	require.NotNil(t, body.Amount)
	assert.True(t, body.Amount.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, body.Amount.DecimalPtr().Equal(decimal.RequireFromString("19.99")))
}

func TestMoney_NilDecimalPtr(t *testing.T) {
	var m *Money
	assert.Nil(t, m.DecimalPtr())
}

func TestCategoryName_SchemaListsCategories(t *testing.T) {
	schema := CategoryName("").Schema(nil)

	assert.Equal(t, huma.TypeString, schema.Type)
	assert.Equal(t, []any{"Food", "Shopping", "Transportation", "Events", "Recurring", "Services", "Travel"}, schema.Enum)
}

func TestCategoryName_MarshalsAsString(t *testing.T) {
	out, err := json.Marshal(struct {
		Category CategoryName `json:"category"`
	}{Category: NewCategoryName(category.Travel)})

	require.NoError(t, err)
	assert.JSONEq(t, `{"category": "Travel"}`, string(out))
}

func TestNewError_UnprocessableBecomesBadRequest(t *testing.T) {
	err := huma.NewError(http.StatusUnprocessableEntity, "validation failed", &huma.ErrorDetail{
		Message:  "expected number",
		Location: "body.amount",
	})

	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
	assert.Contains(t, err.Error(), "validation failed: ")
	assert.Contains(t, err.Error(), "expected number")

	out, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, err.Error()), string(out))
}

func TestNewError_KeepsOtherStatuses(t *testing.T) {
	err := huma.NewError(http.StatusNotFound, "nothing here")

	assert.Equal(t, http.StatusNotFound, err.GetStatus())
	assert.Equal(t, "nothing here", err.Error())
}

func TestFromServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"not found", &service.Error{Kind: service.ErrNotFound, Message: "Budget not found"}, http.StatusNotFound, "Budget not found"},
		{"conflict", &service.Error{Kind: service.ErrConflict, Message: "taken"}, http.StatusConflict, "taken"},
		{"validation", &service.Error{Kind: service.ErrValidation, Message: "bad"}, http.StatusBadRequest, "bad"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusBadRequest, "pq: connection refused"},
		{"wrapped", fmt.Errorf("update budget: %w", &service.Error{Kind: service.ErrConflict, Message: "taken"}), http.StatusConflict, "taken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromServiceError(tt.err)

			var body *ErrorBody
			require.True(t, errors.As(err, &body))
			assert.Equal(t, tt.status, body.GetStatus())
			assert.Equal(t, tt.msg, body.Message)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-02-10T15:04:05+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 13, 4, 5, 0, time.UTC), d)

	_, err = ParseDate("yesterday")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("plus2", 2*60*60)
	assert.Equal(t, "2024-01-05T00:00:00Z", FormatDate(time.Date(2024, 1, 5, 2, 0, 0, 0, loc)))
}
