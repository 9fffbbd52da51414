package handler

import (
	"net/http"

	"github.com/garaga28/Librario/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateOnlineOrder(c echo.Context) error {
	var req model.CreateOnlineOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	order, err := h.paymentSvc.CreateOnlineOrder(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) VerifyPayment(c echo.Context) error {
	var req model.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ok, err := h.paymentSvc.Verify(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"verified": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"verified": true})
}

func (h *Handler) RecordCashPayment(c echo.Context) error {
	var req model.CashPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	payment, err := h.paymentSvc.RecordCash(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, payment)
}

func (h *Handler) SettleOverdue(c echo.Context) error {
	recordID, err := pathID(c, "recordId")
	if err != nil {
		return err
	}
	payment, err := h.paymentSvc.SettleOverdue(c.Request().Context(), recordID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *Handler) PaymentHistory(c echo.Context) error {
	memberID, err := memberScope(c)
	if err != nil {
		return err
	}
	var (
		history []model.PaymentHistory
	)
	if memberID != nil {
		history, err = h.paymentSvc.HistoryByMember(c.Request().Context(), *memberID)
	} else {
		history, err = h.paymentSvc.HistoryAll(c.Request().Context())
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}
