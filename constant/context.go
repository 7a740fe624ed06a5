package constant

type ContextKey string

const (
	MemberIDKey ContextKey = "member_id"
	AdminIDKey  ContextKey = "admin_id"
)
