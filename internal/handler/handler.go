package handler

import (
	"net/http"

	"github.com/garaga28/Librario/internal/errs"
	md "github.com/garaga28/Librario/pkg/middleware"
	"github.com/garaga28/Librario/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	catalogSvc CatalogService
	requestSvc RequestService
	loanSvc    LoanService
	overdueSvc OverdueService
	paymentSvc PaymentService
	log        *zap.Logger
}

func New(
	catalogSvc CatalogService,
	requestSvc RequestService,
	loanSvc LoanService,
	overdueSvc OverdueService,
	paymentSvc PaymentService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		requestSvc: requestSvc,
		loanSvc:    loanSvc,
		overdueSvc: overdueSvc,
		paymentSvc: paymentSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.PATCH("/books/:bookId/copies", h.ResizeCopies)
	api.POST("/books/:bookId/borrow", h.BorrowCopy)
	api.POST("/books/:bookId/return", h.ReturnCopy)

	api.POST("/requests", h.SubmitRequest)
	api.GET("/requests/pending", h.ListPendingRequests)
	api.POST("/requests/:requestId/accept", h.AcceptRequest)
	api.POST("/requests/:requestId/reject", h.RejectRequest)

	api.POST("/loans", h.OpenLoan)
	api.POST("/loans/return", h.CloseLoan)
	api.POST("/loans/:recordId/return", h.CloseLoanByID)
	api.GET("/loans/active", h.ListActiveLoans)
	api.GET("/loans/returned", h.ListReturnedLoans)
	api.GET("/loans", h.ListAllLoans)
	api.GET("/loans/overdue", h.ListOverdue)

	api.POST("/payments/orders", h.CreateOnlineOrder)
	api.POST("/payments/verify", h.VerifyPayment)
	api.POST("/payments/cash", h.RecordCashPayment)
	api.POST("/payments/overdue/:recordId/settle", h.SettleOverdue)
	api.GET("/payments/history", h.PaymentHistory)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, errs.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrGateway):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
