package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

const testInvestmentID = "0192f3a4-5b6c-7d8e-9f00-0000000000e1"

// --- mock investment service ---

type mockInvestmentService struct {
	createInvestmentFn func(userID string, in services.CreateInvestmentInput) (*models.Investment, *services.MutationResult, error)
	listInvestmentsFn  func(userID string, status *models.InvestmentStatus) (*services.InvestmentList, error)
	updateValueFn      func(userID, investmentID string, currentValue models.Money) (*models.Investment, error)
	liquidateFn        func(userID, investmentID string) (*services.LiquidationResult, error)
}

func (m *mockInvestmentService) CreateInvestment(userID string, in services.CreateInvestmentInput) (*models.Investment, *services.MutationResult, error) {
	if m.createInvestmentFn != nil {
		return m.createInvestmentFn(userID, in)
	}
	return &models.Investment{}, &services.MutationResult{}, nil
}

func (m *mockInvestmentService) ListInvestments(userID string, status *models.InvestmentStatus) (*services.InvestmentList, error) {
	if m.listInvestmentsFn != nil {
		return m.listInvestmentsFn(userID, status)
	}
	return &services.InvestmentList{Investments: []models.Investment{}}, nil
}

func (m *mockInvestmentService) UpdateInvestmentValue(userID, investmentID string, currentValue models.Money) (*models.Investment, error) {
	if m.updateValueFn != nil {
		return m.updateValueFn(userID, investmentID, currentValue)
	}
	return &models.Investment{}, nil
}

func (m *mockInvestmentService) LiquidateInvestment(userID, investmentID string) (*services.LiquidationResult, error) {
	if m.liquidateFn != nil {
		return m.liquidateFn(userID, investmentID)
	}
	return &services.LiquidationResult{}, nil
}

// verify interface compliance
var _ services.InvestmentServicer = (*mockInvestmentService)(nil)

func setupInvestmentRouter(handler *InvestmentHandler) *gin.Engine {
	r := newTestRouter()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/investments", handler.AddInvestment)
	auth.GET("/investments", handler.GetPortfolio)
	auth.PATCH("/investments/:id/value", handler.UpdateValue)
	auth.POST("/investments/:id/liquidate", handler.Liquidate)
	return r
}

func TestInvestmentHandler_AddInvestment(t *testing.T) {
	t.Run("returns 201 with new balance", func(t *testing.T) {
		var got services.CreateInvestmentInput
		svc := &mockInvestmentService{
			createInvestmentFn: func(_ string, in services.CreateInvestmentInput) (*models.Investment, *services.MutationResult, error) {
				got = in
				return &models.Investment{InvestmentName: in.InvestmentName}, &services.MutationResult{NewBalance: 50000, TransactionID: "t"}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupInvestmentRouter(NewInvestmentHandler(svc, audit))

		rec := doRequest(r, "POST", "/investments",
			`{"investment_name":"T-Bills","investment_type":"bonds","amount_invested":"500.00","purchase_date":"2025-03-01"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.AmountInvested != 50000 || got.CurrentValue != nil || got.PurchaseDate.IsZero() {
			t.Errorf("unexpected input %+v", got)
		}
		if parseJSON(t, rec)["new_balance"] != "500.00" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
		audit.assertLogged(t, "CREATE_INVESTMENT")
	})

	t.Run("returns 400 on insufficient balance", func(t *testing.T) {
		svc := &mockInvestmentService{
			createInvestmentFn: func(string, services.CreateInvestmentInput) (*models.Investment, *services.MutationResult, error) {
				return nil, nil, apperrors.ErrInsufficientBalance
			},
		}
		audit := &mockAuditService{}
		r := setupInvestmentRouter(NewInvestmentHandler(svc, audit))

		rec := doRequest(r, "POST", "/investments", `{"investment_name":"Fund","investment_type":"stocks","amount_invested":500}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_BALANCE")
		audit.assertNothingLogged(t)
	})
}

func TestInvestmentHandler_UpdateValue(t *testing.T) {
	t.Run("accepts zero value", func(t *testing.T) {
		got := models.Money(-1)
		svc := &mockInvestmentService{
			updateValueFn: func(_, _ string, currentValue models.Money) (*models.Investment, error) {
				got = currentValue
				return &models.Investment{CurrentValue: currentValue}, nil
			},
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/investments/"+testInvestmentID+"/value", `{"current_value":0}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("returns 400 when value missing", func(t *testing.T) {
		r := setupInvestmentRouter(NewInvestmentHandler(&mockInvestmentService{}, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/investments/"+testInvestmentID+"/value", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestInvestmentHandler_Liquidate(t *testing.T) {
	t.Run("returns liquidation result", func(t *testing.T) {
		svc := &mockInvestmentService{
			liquidateFn: func(string, string) (*services.LiquidationResult, error) {
				return &services.LiquidationResult{LiquidatedAmount: 55000, NewBalance: 56000}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupInvestmentRouter(NewInvestmentHandler(svc, audit))

		rec := doRequest(r, "POST", "/investments/"+testInvestmentID+"/liquidate", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["liquidated_amount"] != "550.00" {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
		audit.assertLogged(t, "LIQUIDATE_INVESTMENT")
	})

	t.Run("returns 400 when already sold", func(t *testing.T) {
		svc := &mockInvestmentService{
			liquidateFn: func(string, string) (*services.LiquidationResult, error) { return nil, apperrors.ErrInvestmentSold },
		}
		r := setupInvestmentRouter(NewInvestmentHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/investments/"+testInvestmentID+"/liquidate", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVESTMENT_SOLD")
	})
}

func TestInvestmentHandler_GetPortfolio(t *testing.T) {
	r := setupInvestmentRouter(NewInvestmentHandler(&mockInvestmentService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/investments?status=sold", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := parseJSON(t, rec)["summary"]; !ok {
		t.Error("expected summary in response")
	}

	if rec := doRequest(r, "GET", "/investments?status=matured", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
