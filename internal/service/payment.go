package service

import (
	"context"
	"fmt"
	"time"

	"github.com/garaga28/Librario/internal/errs"
	"github.com/garaga28/Librario/internal/gateway"
	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/notify"
	"github.com/garaga28/Librario/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderCurrency = "INR"

// PaymentService reconciles monetary obligations (membership fees, overdue
// charges) against cash and online payment attempts.
type PaymentService struct {
	log      *zap.Logger
	repo     repository.Repository
	gw       gateway.PaymentGateway
	notifier notify.Notifier
}

func NewPaymentService(repo repository.Repository, gw gateway.PaymentGateway, notifier notify.Notifier, log *zap.Logger) *PaymentService {
	return &PaymentService{
		log:      log,
		repo:     repo,
		gw:       gw,
		notifier: notifier,
	}
}

// CreateOnlineOrder asks the gateway for an order and stores the local
// payment as pending. A gateway failure surfaces as ErrGateway and leaves
// no local row behind.
func (s *PaymentService) CreateOnlineOrder(ctx context.Context, req model.CreateOnlineOrderRequest) (model.OnlineOrder, error) {
	if _, err := s.repo.GetMember(ctx, req.MemberID); err != nil {
		return model.OnlineOrder{}, err
	}

	receipt := uuid.New().String()
	minorUnits := req.Amount.Mul(decimal.NewFromInt(100)).IntPart()

	orderID, err := s.gw.CreateOrder(ctx, minorUnits, orderCurrency, receipt)
	if err != nil {
		s.log.Warn("CreateOnlineOrder", zap.Error(err))
		return model.OnlineOrder{}, errors.Wrap(errs.ErrGateway, err.Error())
	}

	_, err = s.repo.CreatePayment(ctx, model.Payment{
		MemberID:          req.MemberID,
		BorrowingRecordID: req.BorrowingRecordID,
		Amount:            req.Amount,
		Type:              req.Type,
		Method:            model.MethodOnline,
		Status:            model.PaymentPending,
		GatewayOrderID:    &orderID,
	})
	if err != nil {
		return model.OnlineOrder{}, err
	}

	return model.OnlineOrder{
		OrderID:  orderID,
		Amount:   req.Amount,
		Currency: orderCurrency,
		Receipt:  receipt,
	}, nil
}

// Verify settles a pending online payment exactly once. Re-verifying an
// already-completed payment is a no-op success; a signature mismatch marks
// the payment failed.
func (s *PaymentService) Verify(ctx context.Context, req model.VerifyPaymentRequest) (bool, error) {
	payment, err := s.repo.GetPaymentByOrderID(ctx, req.OrderID)
	if err != nil {
		return false, err
	}

	switch payment.Status {
	case model.PaymentCompleted:
		return true, nil
	case model.PaymentFailed:
		return false, nil
	}

	if !s.gw.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		if err := s.repo.FailPayment(ctx, payment.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	settled, err := s.repo.SettlePayment(ctx, payment.ID, req.PaymentID, req.Signature)
	if err != nil {
		return false, err
	}

	if member, err := s.repo.GetMember(ctx, settled.MemberID); err == nil {
		s.notifier.Notify(ctx, notify.AudienceLibrarians, "",
			fmt.Sprintf("A new online payment of Rs. %s has been received from %s.", settled.Amount, member.Name),
			"payment")
		s.sendPaymentConfirmation(ctx, settled, member)
	}
	return true, nil
}

// RecordCash stores a completed cash payment; when tied to a loan the loan
// settles in the same transaction (cash at the counter implies return).
func (s *PaymentService) RecordCash(ctx context.Context, req model.CashPaymentRequest) (model.Payment, error) {
	member, err := s.repo.GetMember(ctx, req.MemberID)
	if err != nil {
		return model.Payment{}, err
	}

	payment, _, err := s.repo.RecordCashPayment(ctx, req)
	if err != nil {
		return model.Payment{}, err
	}

	s.notifier.Notify(ctx, notify.AudienceLibrarians, "",
		fmt.Sprintf("A cash payment of Rs. %s has been recorded for %s.", payment.Amount, member.Name),
		"payment")
	s.sendPaymentConfirmation(ctx, payment, member)
	return payment, nil
}

// SettleOverdue completes the pending overdue debt for a loan, synthesizing
// the payment from the currently computed fine when none is pending.
// Calling it twice returns the same settled payment.
func (s *PaymentService) SettleOverdue(ctx context.Context, recordID int64) (model.Payment, error) {
	record, err := s.repo.GetLoan(ctx, recordID)
	if err != nil {
		return model.Payment{}, err
	}
	member, err := s.repo.GetMember(ctx, record.MemberID)
	if err != nil {
		return model.Payment{}, err
	}

	fine := FineAmount(record.BorrowDate, member.MembershipType, time.Now())
	return s.repo.SettleOverdueDebt(ctx, recordID, decimal.NewFromFloat(fine))
}

func (s *PaymentService) HistoryByMember(ctx context.Context, memberID int64) ([]model.PaymentHistory, error) {
	return s.repo.PaymentHistoryByMember(ctx, memberID)
}

func (s *PaymentService) HistoryAll(ctx context.Context) ([]model.PaymentHistory, error) {
	return s.repo.PaymentHistoryAll(ctx)
}

func (s *PaymentService) sendPaymentConfirmation(ctx context.Context, payment model.Payment, member model.Member) {
	fields := map[string]string{
		"memberName": member.Name,
		"amount":     payment.Amount.StringFixed(2),
		"type":       string(payment.Type),
	}
	if payment.BorrowingRecordID != nil {
		if record, err := s.repo.GetLoan(ctx, *payment.BorrowingRecordID); err == nil {
			if book, err := s.repo.GetBook(ctx, record.BookID); err == nil {
				fields["bookTitle"] = book.Title
				fields["bookAuthor"] = book.Author
			}
		}
	}
	s.notifier.SendEmail(ctx, member.Email, "Payment Confirmation", tplPaymentConfirmation, fields)
}
