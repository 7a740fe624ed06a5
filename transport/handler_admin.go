package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ayoubkd/party-membership/constant"
	"github.com/ayoubkd/party-membership/model"
	utilsContext "github.com/ayoubkd/party-membership/utils/context"
	"github.com/ayoubkd/party-membership/utils/errors"
	validatorx "github.com/ayoubkd/party-membership/utils/validator"
)

// AdminLogin handler
// @Summary Back-office login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AdminLoginRequest true "Admin Login Request"
// @Success 200 {object} model.AdminLoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminListMembers handler
// @Summary List members
// @Description Paginated member listing with wilaya/year/status/search filters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MemberListResponse
// @Router /admin/members [get]
func (s *RestHandler) AdminListMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	filter := &model.MemberListFilter{
		Wilaya: q.Get("wilaya"),
		Search: q.Get("search"),
	}
	filter.JoinYear, _ = strconv.Atoi(q.Get("join_year"))
	filter.Status, _ = strconv.Atoi(q.Get("status"))
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PerPage, _ = strconv.Atoi(q.Get("per_page"))

	res, err := s.AdminApp.ListMembers(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) AdminGetMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	memberID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.GetMember(ctx, memberID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminUpdateMemberStatus handler
// @Summary Suspend or reactivate a member
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body model.UpdateMemberStatusRequest true "Status Request"
// @Success 200 {object} response
// @Router /admin/members/{id}/status [put]
func (s *RestHandler) AdminUpdateMemberStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	memberID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateMemberStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.UpdateMemberStatus(ctx, adminID, memberID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// AdminRecordSubscription handler
// @Summary Record a yearly subscription payment
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RecordSubscriptionRequest true "Subscription Request"
// @Success 200 {object} model.SubscriptionEntity
// @Router /admin/subscriptions [post]
func (s *RestHandler) AdminRecordSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	adminID, ok := utilsContext.GetAdminID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.RecordSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.RecordSubscription(ctx, adminID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminStatistics handler
// @Summary Membership statistics
// @Description Totals, per-status, per-wilaya and per-year breakdowns
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatisticsResponse
// @Router /admin/statistics [get]
func (s *RestHandler) AdminStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AdminApp.GetStatistics(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
