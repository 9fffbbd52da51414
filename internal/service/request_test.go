package service

import (
	"context"
	"testing"

	"github.com/garaga28/Librario/internal/model"
	"github.com/garaga28/Librario/internal/notify"
	"github.com/garaga28/Librario/internal/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	repository.Repository
	rejectFn func(ctx context.Context, requestID int64) (model.BorrowingRequest, error)
	memberFn func(ctx context.Context, id int64) (model.Member, error)
}

func (f fakeRepo) RejectRequest(ctx context.Context, requestID int64) (model.BorrowingRequest, error) {
	return f.rejectFn(ctx, requestID)
}

func (f fakeRepo) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return f.memberFn(ctx, id)
}

type sentNotification struct {
	audience notify.Audience
	userName string
	message  string
	category string
}

type recordingNotifier struct {
	notify.Notifier
	notifications []sentNotification
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{Notifier: notify.Nop()}
}

func (r *recordingNotifier) Notify(_ context.Context, audience notify.Audience, userName, message, category string) {
	r.notifications = append(r.notifications, sentNotification{
		audience: audience,
		userName: userName,
		message:  message,
		category: category,
	})
}

func TestRequestService_Reject_NotifiesMemberAndLibrarians(t *testing.T) {
	t.Parallel()
	repo := fakeRepo{
		rejectFn: func(_ context.Context, requestID int64) (model.BorrowingRequest, error) {
			return model.BorrowingRequest{
				ID:       requestID,
				MemberID: 42,
				BookID:   7,
				Status:   model.RequestRejected,
			}, nil
		},
		memberFn: func(_ context.Context, id int64) (model.Member, error) {
			return model.Member{ID: id, Name: "Alice", Email: "alice@example.com"}, nil
		},
	}
	n := newRecordingNotifier()
	s := NewRequestService(repo, n, zap.NewNop())

	request, err := s.Reject(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, model.RequestRejected, request.Status)

	require.Len(t, n.notifications, 2)
	require.Equal(t, notify.AudienceMember, n.notifications[0].audience)
	require.Equal(t, "Alice", n.notifications[0].userName)
	require.Equal(t, notify.AudienceLibrarians, n.notifications[1].audience)
	require.Contains(t, n.notifications[1].message, "rejected")
}
