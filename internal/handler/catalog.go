package handler

import (
	"net/http"
	"strconv"

	"github.com/garaga28/Librario/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.catalogSvc.ListBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ResizeCopies(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	var req model.ResizeCopiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.catalogSvc.ResizeCopies(c.Request().Context(), bookID, req.TotalCopies)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) BorrowCopy(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.BorrowCopy(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ReturnCopy(c echo.Context) error {
	bookID, err := pathID(c, "bookId")
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.ReturnCopy(c.Request().Context(), bookID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.Errorf("%s is invalid", name).Error())
	}
	return id, nil
}
