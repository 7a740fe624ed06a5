package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	adminapp "github.com/ayoubkd/party-membership/application/admin"
	contentapp "github.com/ayoubkd/party-membership/application/content"
	memberapp "github.com/ayoubkd/party-membership/application/member"
	otpapp "github.com/ayoubkd/party-membership/application/otp"
)

type RestHandler struct {
	MemberApp  memberapp.MemberApp
	OTPApp     otpapp.OTPApp
	AdminApp   adminapp.AdminApp
	ContentApp contentapp.ContentApp
}

func NewTransport(memberApp memberapp.MemberApp, otpApp otpapp.OTPApp, adminApp adminapp.AdminApp, contentApp contentapp.ContentApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		MemberApp:  memberApp,
		OTPApp:     otpApp,
		AdminApp:   adminApp,
		ContentApp: contentApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/quick-register", rh.QuickRegister).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/password-reset", rh.ResetPassword).Methods(http.MethodPost)
	mux.HandleFunc("/otp/request", rh.RequestOTP).Methods(http.MethodPost)
	mux.HandleFunc("/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/otp/status", rh.OTPStatus).Methods(http.MethodGet)
	mux.HandleFunc("/content/activities", rh.ListActivities).Methods(http.MethodGet)
	mux.HandleFunc("/content/activities/{id}", rh.GetActivity).Methods(http.MethodGet)
	mux.HandleFunc("/content/gallery", rh.ListGallery).Methods(http.MethodGet)
	mux.HandleFunc("/content/leadership", rh.ListLeaders).Methods(http.MethodGet)

	// Member portal routes (JWT protected)
	mux.HandleFunc("/member/profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/member/profile", rh.UpdateProfile).Methods(http.MethodPut)
	mux.HandleFunc("/member/photo", rh.UpdatePhoto).Methods(http.MethodPut)
	mux.HandleFunc("/member/phone", rh.ChangePhone).Methods(http.MethodPut)
	mux.HandleFunc("/member/card", rh.GetCard).Methods(http.MethodGet)
	mux.HandleFunc("/member/subscriptions", rh.ListSubscriptions).Methods(http.MethodGet)
	mux.HandleFunc("/member/activity-log", rh.ListEvents).Methods(http.MethodGet)

	// Back-office routes
	adminRouter := mux.PathPrefix("/admin").Subrouter()
	adminRouter.HandleFunc("/login", rh.AdminLogin).Methods(http.MethodPost)
	adminRouter.HandleFunc("/members", rh.AdminListMembers).Methods(http.MethodGet)
	adminRouter.HandleFunc("/members/{id}", rh.AdminGetMember).Methods(http.MethodGet)
	adminRouter.HandleFunc("/members/{id}/status", rh.AdminUpdateMemberStatus).Methods(http.MethodPut)
	adminRouter.HandleFunc("/subscriptions", rh.AdminRecordSubscription).Methods(http.MethodPost)
	adminRouter.HandleFunc("/statistics", rh.AdminStatistics).Methods(http.MethodGet)
	adminRouter.HandleFunc("/content/activities", rh.AdminCreateActivity).Methods(http.MethodPost)
	adminRouter.HandleFunc("/content/activities", rh.AdminListActivities).Methods(http.MethodGet)
	adminRouter.HandleFunc("/content/activities/{id}", rh.AdminUpdateActivity).Methods(http.MethodPut)
	adminRouter.HandleFunc("/content/activities/{id}", rh.AdminDeleteActivity).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/content/gallery", rh.AdminCreateGalleryItem).Methods(http.MethodPost)
	adminRouter.HandleFunc("/content/gallery/{id}", rh.AdminDeleteGalleryItem).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/content/leadership", rh.AdminCreateLeader).Methods(http.MethodPost)
	adminRouter.HandleFunc("/content/leadership/{id}", rh.AdminUpdateLeader).Methods(http.MethodPut)
	adminRouter.HandleFunc("/content/leadership/{id}", rh.AdminDeleteLeader).Methods(http.MethodDelete)
	adminRouter.Use(AdminAuthMiddleware(adminApp))

	// Internal routes (static API key, consumed by the queue worker)
	internalRouter := mux.PathPrefix("/internal").Subrouter()
	internalRouter.HandleFunc("/v1/otp/cleanup", rh.InternalOTPCleanup).Methods(http.MethodPost)
	internalRouter.Use(InternalMiddleware(internalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(memberApp))

	return mux
}
