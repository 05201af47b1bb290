package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapsAndUnwraps(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, "INTERNAL_ERROR", "database unavailable", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsAppErrorThroughWrapping(t *testing.T) {
	inner := NotFound(CodeTicketNotFound, "ticket not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	appErr, ok := IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeTicketNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestInsufficientStockCarriesFullReport(t *testing.T) {
	err := InsufficientStock([]MissingPart{
		{PartID: "p1", Name: "Screen", SKU: "SCR-1", Required: 2, Available: 1, Missing: 1},
		{PartID: "p2", Name: "Battery", SKU: "BAT-1", Required: 1, Available: 0, Missing: 1},
	})

	assert.Equal(t, CodeInsufficientStock, err.Code)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus)

	missing, ok := err.Params["missing_parts"].([]MissingPart)
	require.True(t, ok)
	assert.Len(t, missing, 2)
}

func TestOutstandingBalanceUsesPaymentRequired(t *testing.T) {
	err := OutstandingBalance(50000)

	assert.Equal(t, CodeOutstandingBalance, err.Code)
	assert.Equal(t, http.StatusPaymentRequired, err.HTTPStatus)
	assert.Equal(t, int64(50000), err.Params["balance_cents"])
}

func TestInvalidTransitionParams(t *testing.T) {
	err := InvalidTransition("deliver", "IN_REPAIR")

	assert.Equal(t, CodeInvalidTransition, err.Code)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus)
	assert.Equal(t, "deliver", err.Params["operation"])
	assert.Equal(t, "IN_REPAIR", err.Params["current_status"])
}
