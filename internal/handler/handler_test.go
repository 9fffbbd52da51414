package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garaga28/Librario/internal/errs"
	"github.com/garaga28/Librario/internal/handler"
	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/pkg/auth"
	md "github.com/garaga28/Librario/pkg/middleware"
	"github.com/garaga28/Librario/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/garaga28/Librario/internal/handler/mocks"
)

func newTestHandler(
	catalog *service_mocks.MockCatalogService,
	request *service_mocks.MockRequestService,
	loan *service_mocks.MockLoanService,
	overdue *service_mocks.MockOverdueService,
	payment *service_mocks.MockPaymentService,
) *handler.Handler {
	log := zap.NewExample().Named("test")
	return handler.New(catalog, request, loan, overdue, payment, log)
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"The Go Programming Language","author":"Donovan","totalCopies":3}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					CreateBook(gomock.Any(), model.CreateBookRequest{
						Title:       "The Go Programming Language",
						Author:      "Donovan",
						TotalCopies: 3,
					}).
					Return(model.Book{
						ID:              1,
						Title:           "The Go Programming Language",
						Author:          "Donovan",
						TotalCopies:     3,
						AvailableCopies: 3,
						Status:          model.BookAvailable,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"title":"The Go Programming Language","author":"Donovan","totalCopies":3,"availableCopies":3,"status":"AVAILABLE"}`,
			},
		},
		{
			name:         "err. totalCopies required",
			body:         `{"title":"The Go Programming Language","author":"Donovan"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. internal",
			body: `{"title":"The Go Programming Language","author":"Donovan","totalCopies":3}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					CreateBook(gomock.Any(), gomock.Any()).
					Return(model.Book{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			catalog := service_mocks.NewMockCatalogService(c)
			tt.mockBehavior(catalog)
			h := newTestHandler(catalog, nil, nil, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/books", h.CreateBook)

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SubmitRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
	}
	type mockBehavior func(r *service_mocks.MockRequestService)

	var tests = []struct {
		name         string
		body         string
		memberID     string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:     "ok",
			body:     `{"bookId":7}`,
			memberID: "42",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Submit(gomock.Any(), model.SubmitRequestRequest{BookID: 7, MemberID: 42}).
					Return(model.BorrowingRequest{
						ID:       5,
						MemberID: 42,
						BookID:   7,
						Status:   model.RequestPending,
					}, nil)
			},
			response: response{expectedCode: http.StatusCreated},
		},
		{
			name:         "err. identity missing",
			body:         `{"bookId":7}`,
			memberID:     "",
			mockBehavior: func(r *service_mocks.MockRequestService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name:     "err. duplicate pending request",
			body:     `{"bookId":7}`,
			memberID: "42",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(model.BorrowingRequest{}, errs.ErrConflict)
			},
			response: response{expectedCode: http.StatusConflict},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			request := service_mocks.NewMockRequestService(c)
			tt.mockBehavior(request)
			h := newTestHandler(nil, request, nil, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/requests", h.SubmitRequest, md.AuthContext)

			r := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.memberID != "" {
				r.Header.Set(auth.XMemberIDHeader, tt.memberID)
				r.Header.Set(auth.XUserRoleHeader, auth.RoleMember)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
		})
	}
}

func TestHandler_AcceptRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockRequestService)

	var tests = []struct {
		name         string
		requestID    string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:      "ok",
			requestID: "5",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Accept(gomock.Any(), int64(5)).
					Return(model.BorrowingRecord{ID: 11, MemberID: 42, BookID: 7}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrowingRecordId":11,"memberId":42,"bookId":7,"borrowDate":"0001-01-01T00:00:00Z","returned":false}`,
			},
		},
		{
			name:      "err. request not found",
			requestID: "5",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Accept(gomock.Any(), int64(5)).
					Return(model.BorrowingRecord{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:      "err. no copies left",
			requestID: "5",
			mockBehavior: func(r *service_mocks.MockRequestService) {
				r.EXPECT().
					Accept(gomock.Any(), int64(5)).
					Return(model.BorrowingRecord{}, errs.ErrUnavailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book is currently not available"}`,
			},
		},
		{
			name:         "err. bad request id",
			requestID:    "abc",
			mockBehavior: func(r *service_mocks.MockRequestService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"requestId is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			request := service_mocks.NewMockRequestService(c)
			tt.mockBehavior(request)
			h := newTestHandler(nil, request, nil, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/requests/:requestId/accept", h.AcceptRequest)

			r := httptest.NewRequest(http.MethodPost, "/requests/"+tt.requestID+"/accept", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_VerifyPayment(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPaymentService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"orderId":"order_1","paymentId":"pay_1","signature":"sig"}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					Verify(gomock.Any(), model.VerifyPaymentRequest{
						OrderID:   "order_1",
						PaymentID: "pay_1",
						Signature: "sig",
					}).
					Return(true, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"verified":true}`,
			},
		},
		{
			name: "err. signature mismatch",
			body: `{"orderId":"order_1","paymentId":"pay_1","signature":"bad"}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					Verify(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"verified":false}`,
			},
		},
		{
			name: "err. unknown order",
			body: `{"orderId":"order_x","paymentId":"pay_1","signature":"sig"}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					Verify(gomock.Any(), gomock.Any()).
					Return(false, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. signature required",
			body:         `{"orderId":"order_1","paymentId":"pay_1"}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			payment := service_mocks.NewMockPaymentService(c)
			tt.mockBehavior(payment)
			h := newTestHandler(nil, nil, nil, nil, payment)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/payments/verify", h.VerifyPayment)

			r := httptest.NewRequest(http.MethodPost, "/payments/verify", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_RecordCashPayment(t *testing.T) {
	t.Parallel()
	recordID := int64(11)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPaymentService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok, loan settles with the payment",
			body: `{"memberId":42,"amount":"150","type":"overdue_charges","borrowingRecordId":11}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					RecordCash(gomock.Any(), model.CashPaymentRequest{
						MemberID:          42,
						Amount:            decimal.NewFromInt(150),
						Type:              model.PaymentOverdueCharges,
						BorrowingRecordID: &recordID,
					}).
					Return(model.Payment{
						ID:                9,
						MemberID:          42,
						BorrowingRecordID: &recordID,
						Amount:            decimal.NewFromInt(150),
						Type:              model.PaymentOverdueCharges,
						Method:            model.MethodCash,
						Status:            model.PaymentCompleted,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"paymentId":9,"memberId":42,"borrowingRecordId":11,"amount":"150","type":"overdue_charges","method":"cash","status":"completed","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. type required",
			body:         `{"memberId":42,"amount":"150"}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. member not found",
			body: `{"memberId":42,"amount":"150","type":"membership_fee"}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					RecordCash(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name: "err. loan not found",
			body: `{"memberId":42,"amount":"150","type":"overdue_charges","borrowingRecordId":999}`,
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					RecordCash(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			payment := service_mocks.NewMockPaymentService(c)
			tt.mockBehavior(payment)
			h := newTestHandler(nil, nil, nil, nil, payment)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/payments/cash", h.RecordCashPayment)

			r := httptest.NewRequest(http.MethodPost, "/payments/cash", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SettleOverdue(t *testing.T) {
	t.Parallel()
	recordID := int64(11)
	settled := model.Payment{
		ID:                9,
		MemberID:          42,
		BorrowingRecordID: &recordID,
		Amount:            decimal.NewFromInt(30),
		Type:              model.PaymentOverdueCharges,
		Method:            model.MethodCash,
		Status:            model.PaymentCompleted,
	}
	settledBody := `{"paymentId":9,"memberId":42,"borrowingRecordId":11,"amount":"30","type":"overdue_charges","method":"cash","status":"completed","createdAt":"0001-01-01T00:00:00Z"}`

	type response struct {
		expectedCode int
		expectedBody string
	}

	var tests = []struct {
		name         string
		recordID     string
		mockBehavior func(r *service_mocks.MockPaymentService)
		response     response
	}{
		{
			name:     "ok",
			recordID: "11",
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					SettleOverdue(gomock.Any(), int64(11)).
					Return(settled, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: settledBody,
			},
		},
		{
			name:     "err. loan not found",
			recordID: "999",
			mockBehavior: func(r *service_mocks.MockPaymentService) {
				r.EXPECT().
					SettleOverdue(gomock.Any(), int64(999)).
					Return(model.Payment{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. bad record id",
			recordID:     "abc",
			mockBehavior: func(r *service_mocks.MockPaymentService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"recordId is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			payment := service_mocks.NewMockPaymentService(c)
			tt.mockBehavior(payment)
			h := newTestHandler(nil, nil, nil, nil, payment)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/payments/overdue/:recordId/settle", h.SettleOverdue)

			r := httptest.NewRequest(http.MethodPost, "/payments/overdue/"+tt.recordID+"/settle", http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_SettleOverdue_Idempotent(t *testing.T) {
	t.Parallel()
	recordID := int64(11)
	settled := model.Payment{
		ID:                9,
		MemberID:          42,
		BorrowingRecordID: &recordID,
		Amount:            decimal.NewFromInt(30),
		Type:              model.PaymentOverdueCharges,
		Method:            model.MethodCash,
		Status:            model.PaymentCompleted,
	}

	c := gomock.NewController(t)
	defer c.Finish()
	payment := service_mocks.NewMockPaymentService(c)
	// settling twice returns the same completed payment both times
	payment.EXPECT().
		SettleOverdue(gomock.Any(), int64(11)).
		Return(settled, nil).
		Times(2)
	h := newTestHandler(nil, nil, nil, nil, payment)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/payments/overdue/:recordId/settle", h.SettleOverdue)

	var bodies []string
	for i := 0; i < 2; i++ {
		r := httptest.NewRequest(http.MethodPost, "/payments/overdue/11/settle", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
		bodies = append(bodies, strings.Trim(w.Body.String(), "\n"))
	}
	require.Equal(t, bodies[0], bodies[1])
}

func TestHandler_CloseLoanByID(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}

	var tests = []struct {
		name         string
		recordID     string
		mockBehavior func(r *service_mocks.MockLoanService)
		response     response
	}{
		{
			name:     "ok",
			recordID: "11",
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().
					CloseByID(gomock.Any(), int64(11)).
					Return(model.BorrowingRecord{ID: 11, MemberID: 42, BookID: 7, Returned: true}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"borrowingRecordId":11,"memberId":42,"bookId":7,"borrowDate":"0001-01-01T00:00:00Z","returned":true}`,
			},
		},
		{
			name:     "err. already returned",
			recordID: "11",
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().
					CloseByID(gomock.Any(), int64(11)).
					Return(model.BorrowingRecord{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"conflict"}`,
			},
		},
		{
			name:     "err. loan not found",
			recordID: "999",
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().
					CloseByID(gomock.Any(), int64(999)).
					Return(model.BorrowingRecord{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			loan := service_mocks.NewMockLoanService(c)
			tt.mockBehavior(loan)
			h := newTestHandler(nil, nil, loan, nil, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans/:recordId/return", h.CloseLoanByID)

			r := httptest.NewRequest(http.MethodPost, "/loans/"+tt.recordID+"/return", http.NoBody)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListOverdue(t *testing.T) {
	t.Parallel()
	memberID := int64(42)

	var tests = []struct {
		name         string
		query        string
		role         string
		headerID     string
		mockBehavior func(r *service_mocks.MockOverdueService)
		expectedCode int
	}{
		{
			name:     "member scoped by identity",
			role:     auth.RoleMember,
			headerID: "42",
			mockBehavior: func(r *service_mocks.MockOverdueService) {
				r.EXPECT().
					ListOverdue(gomock.Any(), &memberID).
					Return([]model.OverdueBook{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "librarian sees all",
			role: auth.RoleLibrarian,
			mockBehavior: func(r *service_mocks.MockOverdueService) {
				r.EXPECT().
					ListOverdue(gomock.Any(), gomock.Nil()).
					Return([]model.OverdueBook{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "explicit memberId wins",
			query: "?memberId=42",
			role:  auth.RoleLibrarian,
			mockBehavior: func(r *service_mocks.MockOverdueService) {
				r.EXPECT().
					ListOverdue(gomock.Any(), &memberID).
					Return([]model.OverdueBook{}, nil)
			},
			expectedCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			overdue := service_mocks.NewMockOverdueService(c)
			tt.mockBehavior(overdue)
			h := newTestHandler(nil, nil, nil, overdue, nil)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/loans/overdue", h.ListOverdue, md.AuthContext)

			r := httptest.NewRequest(http.MethodGet, "/loans/overdue"+tt.query, http.NoBody)
			r.Header.Set(auth.XUserRoleHeader, tt.role)
			if tt.headerID != "" {
				r.Header.Set(auth.XMemberIDHeader, tt.headerID)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
