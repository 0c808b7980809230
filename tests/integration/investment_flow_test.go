package integration

import (
	"net/http"
	"testing"

	"finvault/internal/models"
	"finvault/internal/testutil"
)

func TestInvestmentFlow_FailedPurchaseLeavesNoTrace(t *testing.T) {
	app := setupApp(t)
	userID := app.newUser(t, "400.00")

	expectError(t, app.request("POST", "/api/v1/investments",
		`{"investment_name":"Treasury bill","investment_type":"bond","amount_invested":"500.00"}`, userID),
		http.StatusBadRequest, "INSUFFICIENT_BALANCE")

	if got := app.balance(t, userID, "main"); got != "400.00" {
		t.Errorf("expected 400.00, got %s", got)
	}
	portfolio := expectStatus(t, app.request("GET", "/api/v1/investments", "", userID), http.StatusOK)
	if n := len(portfolio["investments"].([]interface{})); n != 0 {
		t.Errorf("expected no investments, got %d", n)
	}
	if n := testutil.CountTransactions(t, app.DB, userID); n != 1 {
		t.Errorf("expected only the funding entry, got %d", n)
	}
}

func TestInvestmentFlow_RevalueAndLiquidate(t *testing.T) {
	app := setupApp(t)
	userID := app.newUser(t, "1000.00")

	created := expectStatus(t, app.request("POST", "/api/v1/investments",
		`{"investment_name":"Index fund","investment_type":"fund","amount_invested":"400.00"}`, userID), http.StatusCreated)
	if created["new_balance"] != "600.00" {
		t.Errorf("expected 600.00 after purchase, got %v", created["new_balance"])
	}
	investmentID := created["investment"].(map[string]interface{})["id"].(string)

	updated := expectStatus(t, app.request("PATCH", "/api/v1/investments/"+investmentID+"/value",
		`{"current_value":"500.00"}`, userID), http.StatusOK)
	if updated["investment"].(map[string]interface{})["return_percentage"].(float64) != 25 {
		t.Errorf("expected 25%% return, got %v", updated)
	}

	portfolio := expectStatus(t, app.request("GET", "/api/v1/investments?status=active", "", userID), http.StatusOK)
	summary := portfolio["summary"].(map[string]interface{})
	if summary["total_invested"] != "400.00" || summary["total_current_value"] != "500.00" {
		t.Errorf("unexpected summary %v", summary)
	}

	liquidated := expectStatus(t, app.request("POST", "/api/v1/investments/"+investmentID+"/liquidate", "", userID), http.StatusOK)
	if liquidated["liquidated_amount"] != "500.00" || liquidated["new_balance"] != "1100.00" {
		t.Errorf("unexpected liquidation %v", liquidated)
	}

	expectError(t, app.request("POST", "/api/v1/investments/"+investmentID+"/liquidate", "", userID),
		http.StatusBadRequest, "INVESTMENT_SOLD")
	expectError(t, app.request("PATCH", "/api/v1/investments/"+investmentID+"/value",
		`{"current_value":"1.00"}`, userID), http.StatusBadRequest, "INVESTMENT_SOLD")

	testutil.AssertConserved(t, app.DB, userID, models.AccountTypeMain, 0)
}
