package adaptor

import (
	"net/http"

	"account-insights/internal/usecase"
	"account-insights/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// UsersWithRoles handles GET /api/reports/users-with-roles
func (h *ReportHandler) UsersWithRoles(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.UsersWithRoles(r.Context())
	if err != nil {
		h.handleReportError(w, err, "users with roles")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// UsersWithProfiles handles GET /api/reports/users-with-profiles
func (h *ReportHandler) UsersWithProfiles(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.UsersWithProfiles(r.Context())
	if err != nil {
		h.handleReportError(w, err, "users with profiles")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// RolesRightJoin handles GET /api/reports/roles-right-join
func (h *ReportHandler) RolesRightJoin(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.RolesWithAssignment(r.Context())
	if err != nil {
		h.handleReportError(w, err, "roles with assignment")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// ProfilesFullOuter handles GET /api/reports/profiles-full-outer
func (h *ReportHandler) ProfilesFullOuter(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ProfilesFullOuter(r.Context())
	if err != nil {
		h.handleReportError(w, err, "profiles full outer")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// UserRoleCombos handles GET /api/reports/user-role-combos
func (h *ReportHandler) UserRoleCombos(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.UserRoleCombinations(r.Context())
	if err != nil {
		h.handleReportError(w, err, "user role combinations")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// Referrals handles GET /api/reports/referrals
func (h *ReportHandler) Referrals(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Referrals(r.Context())
	if err != nil {
		h.handleReportError(w, err, "referrals")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// LatestLogin handles GET /api/reports/latest-login
func (h *ReportHandler) LatestLogin(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.LatestLoginPerUser(r.Context())
	if err != nil {
		h.handleReportError(w, err, "latest login per user")
		return
	}

	utils.ResponseSuccess(w, "Report retrieved successfully", rows)
}

// handleReportError maps the single report failure kind onto the uniform
// 500 envelope carrying the message
func (h *ReportHandler) handleReportError(w http.ResponseWriter, err error, reportName string) {
	h.log.Error("Report failed",
		zap.Error(err),
		zap.String("report", reportName),
	)
	utils.ResponseInternalError(w, err.Error())
}
