package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/spend-tracker/internal/handlers/v1/apiutil"
)

func TestTransactionBody_ToInput(t *testing.T) {
	date := "2024-02-10T10:00:00Z"
	desc := "Taxi"
	amount := apiutil.NewMoney(decimal.RequireFromString("12.40"))

	input, err := (&TransactionBody{Amount: &amount, Date: &date, Description: &desc}).toInput()

	require.NoError(t, err)
	require.NotNil(t, input.Date)
	assert.True(t, input.Date.Equal(time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)))
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("12.40")))
	assert.Nil(t, input.Category)
}

func TestTransactionBody_ToInputEmpty(t *testing.T) {
	input, err := (&TransactionBody{}).toInput()

	require.NoError(t, err)
	assert.Nil(t, input.Amount)
	assert.Nil(t, input.Date)
	assert.Nil(t, input.Description)
}
