package transport

import (
	"encoding/json"
	"net/http"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/utils/errors"
)

type otpCleanupRequest struct {
	Phone   string `json:"phone"`
	Purpose string `json:"purpose"`
}

// InternalOTPCleanup removes an expired unverified code. Called by the
// queue consumer when the delayed expiration message fires.
func (s *RestHandler) InternalOTPCleanup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req otpCleanupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if req.Phone == "" || req.Purpose == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OTPApp.CleanupExpired(ctx, req.Phone, req.Purpose); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
