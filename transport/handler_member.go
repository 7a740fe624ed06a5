package transport

import (
	"encoding/json"
	"net/http"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	utilsContext "github.com/ayoubkd/party-membership/utils/context"
	"github.com/ayoubkd/party-membership/utils/errors"
	validatorx "github.com/ayoubkd/party-membership/utils/validator"
)

// Register handler
// @Summary Register member
// @Description Full registration: allocates a membership number after OTP verification
// @Tags Member
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MemberApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// QuickRegister handler
// @Summary Quick-register member
// @Description Minimal registration flow; still allocates a membership number
// @Tags Member
// @Accept json
// @Produce json
// @Param request body model.QuickRegisterRequest true "Quick Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /quick-register [post]
func (s *RestHandler) QuickRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.QuickRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MemberApp.QuickRegister(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login member
// @Description Login with phone or membership number and receive JWT token
// @Tags Member
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.MemberApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResetPassword handler
// @Summary Reset password
// @Description Set a new password after a verified password_reset OTP
// @Tags Member
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} response
// @Failure 400 {object} errors.CustomError
// @Router /password-reset [post]
func (s *RestHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.MemberApp.ResetPassword(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetProfile returns the authenticated member's profile
// @Summary Get own profile
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MemberEntity
// @Router /member/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MemberApp.GetProfile(ctx, memberID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.MemberApp.UpdateProfile(ctx, memberID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.UpdatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.MemberApp.UpdatePhoto(ctx, memberID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) ChangePhone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ChangePhoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.MemberApp.ChangePhone(ctx, memberID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetCard returns the digital membership card payload
// @Summary Get digital membership card
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MembershipCard
// @Router /member/card [get]
func (s *RestHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MemberApp.GetCard(ctx, memberID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MemberApp.ListSubscriptions(ctx, memberID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, ok := utilsContext.GetMemberID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.MemberApp.ListEvents(ctx, memberID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
