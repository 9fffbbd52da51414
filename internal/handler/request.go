package handler

import (
	"net/http"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) SubmitRequest(c echo.Context) error {
	var req model.SubmitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id, ok := auth.FromContext(c.Request().Context())
	if !ok || id.MemberID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "member identity is required")
	}
	req.MemberID = id.MemberID
	if err := c.Validate(&req); err != nil {
		return err
	}
	request, err := h.requestSvc.Submit(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, request)
}

func (h *Handler) ListPendingRequests(c echo.Context) error {
	requests, err := h.requestSvc.ListPending(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) AcceptRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	record, err := h.requestSvc.Accept(c.Request().Context(), requestID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) RejectRequest(c echo.Context) error {
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	request, err := h.requestSvc.Reject(c.Request().Context(), requestID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}
