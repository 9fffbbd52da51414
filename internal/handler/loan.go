package handler

import (
	"net/http"
	"strconv"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) OpenLoan(c echo.Context) error {
	var req model.OpenLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	record, err := h.loanSvc.Open(c.Request().Context(), req.MemberID, req.BookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

func (h *Handler) CloseLoan(c echo.Context) error {
	var req model.CloseLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	record, err := h.loanSvc.Close(c.Request().Context(), req.MemberID, req.BookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) CloseLoanByID(c echo.Context) error {
	recordID, err := pathID(c, "recordId")
	if err != nil {
		return err
	}
	record, err := h.loanSvc.CloseByID(c.Request().Context(), recordID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) ListActiveLoans(c echo.Context) error {
	memberID, err := memberScope(c)
	if err != nil {
		return err
	}
	if memberID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "member identity is required")
	}
	loans, err := h.loanSvc.ListActive(c.Request().Context(), *memberID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListReturnedLoans(c echo.Context) error {
	memberID, err := memberScope(c)
	if err != nil {
		return err
	}
	if memberID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "member identity is required")
	}
	loans, err := h.loanSvc.ListReturned(c.Request().Context(), *memberID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListAllLoans(c echo.Context) error {
	loans, err := h.loanSvc.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ListOverdue(c echo.Context) error {
	memberID, err := memberScope(c)
	if err != nil {
		return err
	}
	overdue, err := h.overdueSvc.ListOverdue(c.Request().Context(), memberID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, overdue)
}

// memberScope resolves the member the listing is scoped to: an explicit
// memberId query param wins, otherwise the identity headers. A librarian
// with no explicit member gets the unscoped view (nil).
func memberScope(c echo.Context) (*int64, error) {
	if v := c.QueryParam("memberId"); v != "" {
		memberID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "memberId is invalid")
		}
		return &memberID, nil
	}
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return nil, nil
	}
	if id.Role == auth.RoleLibrarian || id.MemberID == 0 {
		return nil, nil
	}
	memberID := id.MemberID
	return &memberID, nil
}
