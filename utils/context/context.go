package context

import (
	"context"

	"github.com/ayoubkd/party-membership/constant"
)

func GetMemberID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.MemberIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetAdminID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.AdminIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
