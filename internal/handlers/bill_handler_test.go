package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finvault/internal/errors"
	"finvault/internal/models"
	"finvault/internal/services"
)

const testBillID = "0192f3a4-5b6c-7d8e-9f00-0000000000b1"

// --- mock bill service ---

type mockBillService struct {
	createBillFn func(userID string, in services.CreateBillInput) (*models.Bill, error)
	listBillsFn  func(userID string, status *models.BillStatus) ([]models.Bill, error)
	getBillFn    func(userID, billID string) (*models.Bill, error)
	payBillFn    func(userID, billID string) (*services.PayBillResult, error)
}

func (m *mockBillService) CreateBill(userID string, in services.CreateBillInput) (*models.Bill, error) {
	if m.createBillFn != nil {
		return m.createBillFn(userID, in)
	}
	return &models.Bill{}, nil
}

func (m *mockBillService) ListBills(userID string, status *models.BillStatus) ([]models.Bill, error) {
	if m.listBillsFn != nil {
		return m.listBillsFn(userID, status)
	}
	return []models.Bill{}, nil
}

func (m *mockBillService) GetBill(userID, billID string) (*models.Bill, error) {
	if m.getBillFn != nil {
		return m.getBillFn(userID, billID)
	}
	return &models.Bill{}, nil
}

func (m *mockBillService) PayBill(userID, billID string) (*services.PayBillResult, error) {
	if m.payBillFn != nil {
		return m.payBillFn(userID, billID)
	}
	return &services.PayBillResult{}, nil
}

// verify interface compliance
var _ services.BillServicer = (*mockBillService)(nil)

func setupBillRouter(handler *BillHandler) *gin.Engine {
	r := newTestRouter()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/bills", handler.CreateBill)
	auth.GET("/bills", handler.GetUserBills)
	auth.GET("/bills/:id", handler.GetBillByID)
	auth.POST("/bills/:id/pay", handler.PayBill)
	return r
}

func TestBillHandler_CreateBill(t *testing.T) {
	t.Run("returns 201 and parses due date", func(t *testing.T) {
		var got services.CreateBillInput
		svc := &mockBillService{
			createBillFn: func(_ string, in services.CreateBillInput) (*models.Bill, error) {
				got = in
				return &models.Bill{BillerName: in.BillerName, Amount: in.Amount}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupBillRouter(NewBillHandler(svc, audit))

		rec := doRequest(r, "POST", "/bills",
			`{"bill_type":"internet","biller_name":"Spectranet","amount":"150.00","due_date":"2025-01-31","is_recurring":true,"recurrence_frequency":"monthly"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount != 15000 || !got.DueDate.Equal(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected input %+v", got)
		}
		if got.RecurrenceFrequency == nil || *got.RecurrenceFrequency != models.BillFrequencyMonthly {
			t.Errorf("expected monthly recurrence, got %v", got.RecurrenceFrequency)
		}
		audit.assertLogged(t, "CREATE_BILL")
	})

	t.Run("returns 400 on bad due date", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/bills", `{"bill_type":"tv","biller_name":"DSTV","amount":10,"due_date":"next week"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown frequency", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/bills",
			`{"bill_type":"tv","biller_name":"DSTV","amount":10,"due_date":"2025-01-01","recurrence_frequency":"daily"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBillHandler_GetUserBills(t *testing.T) {
	t.Run("passes status filter", func(t *testing.T) {
		var got *models.BillStatus
		svc := &mockBillService{
			listBillsFn: func(_ string, status *models.BillStatus) ([]models.Bill, error) {
				got = status
				return []models.Bill{}, nil
			},
		}
		r := setupBillRouter(NewBillHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/bills?status=pending", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got != models.BillStatusPending {
			t.Errorf("expected pending filter, got %v", got)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		r := setupBillRouter(NewBillHandler(&mockBillService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/bills?status=overdue", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBillHandler_PayBill(t *testing.T) {
	t.Run("returns payment result and audits", func(t *testing.T) {
		next := "0192f3a4-5b6c-7d8e-9f00-0000000000b2"
		svc := &mockBillService{
			payBillFn: func(_ string, billID string) (*services.PayBillResult, error) {
				return &services.PayBillResult{BillID: billID, NewBalance: 70000, AmountPaid: 30000, TransactionID: "t", NextBillID: &next}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupBillRouter(NewBillHandler(svc, audit))

		rec := doRequest(r, "POST", "/bills/"+testBillID+"/pay", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["new_balance"] != "700.00" || body["amount_paid"] != "300.00" || body["next_bill_id"] != next {
			t.Errorf("unexpected body %v", body)
		}
		audit.assertLogged(t, "PAY_BILL")
	})

	t.Run("returns 400 when already paid", func(t *testing.T) {
		svc := &mockBillService{
			payBillFn: func(string, string) (*services.PayBillResult, error) { return nil, apperrors.ErrAlreadyPaid },
		}
		audit := &mockAuditService{}
		r := setupBillRouter(NewBillHandler(svc, audit))

		rec := doRequest(r, "POST", "/bills/"+testBillID+"/pay", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ALREADY_PAID")
		audit.assertNothingLogged(t)
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockBillService{
			payBillFn: func(string, string) (*services.PayBillResult, error) { return nil, apperrors.ErrBillNotFound },
		}
		r := setupBillRouter(NewBillHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/bills/"+testBillID+"/pay", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
