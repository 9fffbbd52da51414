package auth

import (
	"context"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
	XMemberIDHeader = "X-Member-Id"
)

const (
	RoleMember    = "member"
	RoleLibrarian = "librarian"
)

// Identity is supplied by the session collaborator upstream; the service
// trusts it and performs no authentication of its own.
type Identity struct {
	UserName string
	Role     string
	MemberID int64
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
