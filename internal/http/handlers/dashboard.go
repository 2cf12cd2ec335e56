package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gamebay/profile-dashboard/internal/domain"
	"github.com/gamebay/profile-dashboard/internal/http/response"
	"github.com/gamebay/profile-dashboard/internal/platform/logger"
	"github.com/gamebay/profile-dashboard/internal/services"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:              log.With("handler", "DashboardHandler"),
		dashboardService: dashboardService,
	}
}

// DashboardResponse is the wire shape of an aggregate. Games and downloads
// are always arrays, never null.
type DashboardResponse struct {
	UserID        string                   `json:"userId"`
	Username      string                   `json:"username"`
	Email         string                   `json:"email"`
	Balance       float64                  `json:"balance"`
	Games         []domain.GameSummary     `json:"games"`
	Downloads     []domain.DownloadSummary `json:"downloads"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
}

func toDashboardResponse(d *domain.ProfileDashboard) DashboardResponse {
	games := []domain.GameSummary(d.Games)
	if games == nil {
		games = []domain.GameSummary{}
	}
	dls := []domain.DownloadSummary(d.Downloads)
	if dls == nil {
		dls = []domain.DownloadSummary{}
	}
	return DashboardResponse{
		UserID:        d.UserID,
		Username:      d.Username,
		Email:         d.Email,
		Balance:       d.Balance,
		Games:         games,
		Downloads:     dls,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// GET /profile-dashboards/:userId
func (dh *DashboardHandler) Get(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	dashboard, err := dh.dashboardService.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		dh.respondServiceError(c, err)
		return
	}
	response.RespondOK(c, toDashboardResponse(dashboard))
}

// GET /profile-dashboards
func (dh *DashboardHandler) List(c *gin.Context) {
	dashboards, err := dh.dashboardService.ListPersisted(c.Request.Context())
	if err != nil {
		dh.respondServiceError(c, err)
		return
	}
	out := make([]DashboardResponse, 0, len(dashboards))
	for _, d := range dashboards {
		out = append(out, toDashboardResponse(d))
	}
	response.RespondOK(c, out)
}

// POST /profile-dashboards/:userId
func (dh *DashboardHandler) Create(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	dashboard, err := dh.dashboardService.Refresh(c.Request.Context(), userID)
	if err != nil {
		dh.respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, toDashboardResponse(dashboard))
}

// PUT /profile-dashboards/:userId
func (dh *DashboardHandler) Update(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	dashboard, err := dh.dashboardService.Refresh(c.Request.Context(), userID)
	if err != nil {
		dh.respondServiceError(c, err)
		return
	}
	response.RespondOK(c, toDashboardResponse(dashboard))
}

// DELETE /profile-dashboards/:userId
func (dh *DashboardHandler) Delete(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	if err := dh.dashboardService.Delete(c.Request.Context(), userID); err != nil {
		dh.respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

func pathUserID(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		response.RespondError(c, http.StatusBadRequest, "user_id_required", errors.New("userId path parameter required"))
		return "", false
	}
	return userID, true
}

func (dh *DashboardHandler) respondServiceError(c *gin.Context, err error) {
	var aggErr *services.AggregationError
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		response.RespondError(c, http.StatusNotFound, "user_not_found", err)
	case errors.Is(err, services.ErrDashboardNotFound):
		response.RespondError(c, http.StatusNotFound, "dashboard_not_found", err)
	case errors.Is(err, services.ErrDownstreamUnavailable):
		response.RespondError(c, http.StatusServiceUnavailable, "downstream_unavailable", err)
	case errors.As(err, &aggErr):
		dh.log.Error("aggregation failed", "path", c.FullPath(), "error", err)
		response.RespondError(c, http.StatusInternalServerError, "aggregation_failed", err)
	default:
		dh.log.Error("request failed", "path", c.FullPath(), "error", err)
		response.RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
