package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ayoubkd/party-membership/application/member"
	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/utils/errors"
)

// AuthMiddleware returns a middleware that validates member JWT sessions.
// Public endpoints, the back office, and internal routes are handled by
// their own guards.
func AuthMiddleware(memberApp member.MemberApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			memberID, err := memberApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.MemberIDKey, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints skip the member session check
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") ||
		strings.HasPrefix(path, "/admin/") || strings.HasPrefix(path, "/otp/") ||
		strings.HasPrefix(path, "/content/") {
		return true
	}
	switch path {
	case "/register", "/quick-register", "/login", "/password-reset":
		return true
	}
	return false
}
