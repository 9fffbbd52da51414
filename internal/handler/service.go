package handler

import (
	"context"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	BorrowCopy(ctx context.Context, bookID int64) (model.Book, error)
	ReturnCopy(ctx context.Context, bookID int64) (model.Book, error)
	ResizeCopies(ctx context.Context, bookID int64, newTotal int) (model.Book, error)
}

type RequestService interface {
	Submit(ctx context.Context, req model.SubmitRequestRequest) (model.BorrowingRequest, error)
	ListPending(ctx context.Context) ([]model.PendingRequest, error)
	Accept(ctx context.Context, requestID int64) (model.BorrowingRecord, error)
	Reject(ctx context.Context, requestID int64) (model.BorrowingRequest, error)
}

type LoanService interface {
	Open(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, error)
	Close(ctx context.Context, memberID, bookID int64) (model.BorrowingRecord, error)
	CloseByID(ctx context.Context, recordID int64) (model.BorrowingRecord, error)
	ListActive(ctx context.Context, memberID int64) ([]model.ActiveLoan, error)
	ListReturned(ctx context.Context, memberID int64) ([]model.LoanRow, error)
	ListAll(ctx context.Context) ([]model.LoanRow, error)
}

type OverdueService interface {
	ListOverdue(ctx context.Context, memberID *int64) ([]model.OverdueBook, error)
}

type PaymentService interface {
	CreateOnlineOrder(ctx context.Context, req model.CreateOnlineOrderRequest) (model.OnlineOrder, error)
	Verify(ctx context.Context, req model.VerifyPaymentRequest) (bool, error)
	RecordCash(ctx context.Context, req model.CashPaymentRequest) (model.Payment, error)
	SettleOverdue(ctx context.Context, recordID int64) (model.Payment, error)
	HistoryByMember(ctx context.Context, memberID int64) ([]model.PaymentHistory, error)
	HistoryAll(ctx context.Context) ([]model.PaymentHistory, error)
}

var _ CatalogService = (*service.CatalogService)(nil)
var _ RequestService = (*service.RequestService)(nil)
var _ LoanService = (*service.LoanService)(nil)
var _ OverdueService = (*service.OverdueService)(nil)
var _ PaymentService = (*service.PaymentService)(nil)
