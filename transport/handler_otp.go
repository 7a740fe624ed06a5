package transport

import (
	"encoding/json"
	"net/http"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	"github.com/ayoubkd/party-membership/utils/errors"
	validatorx "github.com/ayoubkd/party-membership/utils/validator"
)

// RequestOTP handler
// @Summary Request OTP code
// @Description Send a one-time code to the given phone for the given purpose
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.OTPRequestRequest true "OTP Request"
// @Success 200 {object} model.OTPRequestResponse
// @Failure 400 {object} errors.CustomError
// @Router /otp/request [post]
func (s *RestHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OTPRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OTPApp.RequestCode(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify OTP code
// @Description Check the submitted code against the active one for (phone, purpose)
// @Tags OTP
// @Accept json
// @Produce json
// @Param request body model.OTPVerifyRequest true "OTP Verify Request"
// @Success 200 {object} model.OTPVerifyResponse
// @Failure 400 {object} errors.CustomError
// @Router /otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OTPApp.VerifyCode(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// OTPStatus handler
// @Summary Check OTP status
// @Description Read-only view of the active code for (phone, purpose); never mutates state
// @Tags OTP
// @Produce json
// @Param phone query string true "Phone"
// @Param purpose query string true "Purpose"
// @Success 200 {object} model.OTPStatusResponse
// @Router /otp/status [get]
func (s *RestHandler) OTPStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	phone := r.URL.Query().Get("phone")
	purpose := r.URL.Query().Get("purpose")
	if phone == "" || purpose == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OTPApp.CheckStatus(ctx, phone, purpose)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
