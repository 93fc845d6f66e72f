package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/internal/service"
	"github.com/steppulse/steppulse/pkg/entity"
	"github.com/steppulse/steppulse/pkg/httputil"
	"github.com/steppulse/steppulse/pkg/stepwindow"
)

const dateLayout = "2006-01-02"

type RegisterRequest struct {
	EmployeeID  string `json:"employee_id"`
	DeviceID    string `json:"device_id"`
	ProfileName string `json:"profile_name"`
	Company     string `json:"company"`
	DeviceOS    string `json:"device_os"`
	DeviceModel string `json:"device_model"`
}

type ReportedDay struct {
	Date      string `json:"date"`
	StepCount int    `json:"step_count"`
}

type SyncStepsRequest struct {
	Days []ReportedDay `json:"days"`
	Auto bool          `json:"auto"`
}

type SyncStepsResponse struct {
	Sync   *service.SyncResult         `json:"sync"`
	Streak *service.StreakUpdateResult `json:"streak,omitempty"`
}

type ReconcileStreakRequest struct {
	ActivityDate string `json:"activity_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type SessionResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.registrationService.Register(ctx, &service.RegisterRequest{
		EmployeeID:  req.EmployeeID,
		DeviceID:    req.DeviceID,
		ProfileName: req.ProfileName,
		Company:     req.Company,
		DeviceOS:    req.DeviceOS,
		DeviceModel: req.DeviceModel,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDeviceRegistered):
			logger.Error("registering error: device already bound")
			httputil.WriteErrorResponse(w, http.StatusConflict, "this device is already registered to another employee", nil)
		case errors.Is(err, errorvalues.ErrEmployeeIDTaken):
			logger.Error("registering error: employee id taken")
			httputil.WriteErrorResponse(w, http.StatusConflict, "this employee id is already registered", nil)
		case isValidationError(err):
			logger.Error("registering error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid registration data", err)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("registering error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, SessionResponse{
		User:  user,
		Token: token,
	})
	logger.Info("successful registration", slog.String("employee_id", user.EmployeeID))
}

// DeviceSession resolves a device id to its employee and issues a fresh
// token. This is the app-start identity lookup: no password, the device id
// is the identity.
func (s *Server) DeviceSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	deviceID := r.Header.Get("X-Device-ID")
	if deviceID == "" {
		logger.Error("session error: missing device id header")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "missing X-Device-ID header", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.registrationService.LookupByDevice(ctx, deviceID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("session error: device not registered")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "device is not registered", nil)
			return
		}
		logger.Error("session error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during device lookup", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("session error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SessionResponse{
		User:  user,
		Token: token,
	})
	logger.Info("session issued")
}

// SyncSteps reconciles the reported window, then reconciles the streak
// with the latest day that actually had steps. The two stay separate
// services: a failed streak update is reported but never undoes the sync.
func (s *Server) SyncSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("step sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	deviceID, err := GetDeviceIDFromContext(r)
	if err != nil {
		logger.Error("step sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SyncStepsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("step sync error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	reported := make([]stepwindow.DayBucket, 0, len(req.Days))
	for _, day := range req.Days {
		date, err := time.ParseInLocation(dateLayout, day.Date, time.Local)
		if err != nil {
			logger.Error("step sync error: invalid date in payload", slog.String("date", day.Date))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in payload, expected YYYY-MM-DD", nil)
			return
		}
		reported = append(reported, stepwindow.DayBucket{Date: date, StepCount: day.StepCount})
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	result, err := s.syncService.SyncSteps(ctx, employeeID, deviceID, reported, req.Auto)
	if err != nil {
		if errors.Is(err, stepwindow.ErrNegativeStepCount) {
			logger.Error("step sync error: negative step count")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "step counts cannot be negative", nil)
			return
		}
		logger.Error("step sync error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during step sync", nil)
		return
	}
	resp := SyncStepsResponse{Sync: result}
	// Only a day the sync actually committed may advance the streak;
	// reported days outside the stored window never count
	if !result.Throttled && result.LatestActiveDay != nil {
		streakResult, err := s.streakService.Reconcile(ctx, employeeID, *result.LatestActiveDay)
		if err != nil && !errors.Is(err, errorvalues.ErrStaleActivityDate) {
			logger.Error("streak reconcile after sync failed", slog.String("error", err.Error()))
		} else if err == nil {
			resp.Streak = streakResult
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("steps synced",
		slog.Int("processed", result.RecordsProcessed),
		slog.Bool("throttled", result.Throttled),
	)
}

func (s *Server) RecentSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("recent steps error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 30 {
		limit = stepwindow.WindowDays
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	records, err := s.syncService.RecentRecords(ctx, employeeID, limit)
	if err != nil {
		logger.Error("recent steps error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting step records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"employee_id": employeeID,
		"records":     records,
	})
	logger.Info("step records provided")
}

func (s *Server) StepsHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("step history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := time.ParseInLocation(dateLayout, r.URL.Query().Get("from"), time.Local)
	if err != nil {
		logger.Error("step history error: invalid from date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid from, expected YYYY-MM-DD", nil)
		return
	}
	to, err := time.ParseInLocation(dateLayout, r.URL.Query().Get("to"), time.Local)
	if err != nil {
		logger.Error("step history error: invalid to date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid to, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	records, err := s.syncService.HistoryRecords(ctx, employeeID, from, to)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDateRange) {
			logger.Error("step history error: inverted range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "to must not be before from", nil)
			return
		}
		logger.Error("step history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting step records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"employee_id": employeeID,
		"records":     records,
	})
	logger.Info("step history provided")
}

func (s *Server) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("status update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateStatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("status update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.registrationService.SetStatus(ctx, employeeID, entity.UserStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidStatus):
			logger.Error("status update error: invalid status", slog.String("status", req.Status))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "status must be Active or Inactive", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("status update error: user not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("status update error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during status update", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"employee_id": employeeID,
		"status":      req.Status,
	})
	logger.Info("status updated", slog.String("status", req.Status))
}

func (s *Server) ReconcileStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("streak reconcile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReconcileStreakRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("streak reconcile error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	activityDate, err := time.ParseInLocation(dateLayout, req.ActivityDate, time.Local)
	if err != nil {
		logger.Error("streak reconcile error: invalid activity date", slog.String("date", req.ActivityDate))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity_date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.streakService.Reconcile(ctx, employeeID, activityDate)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStaleActivityDate) {
			logger.Error("streak reconcile error: stale activity date")
			httputil.WriteErrorResponse(w, http.StatusConflict, "activity date is earlier than the last recorded one", nil)
			return
		}
		logger.Error("streak reconcile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during streak update", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("streak reconciled",
		slog.Int("current", result.Streak.CurrentStreak),
		slog.Bool("incremented", result.StreakIncremented),
		slog.Bool("reset", result.StreakReset),
	)
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.streakService.GetStreak(ctx, employeeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			logger.Error("get streak error: no streak yet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no streak recorded yet", nil)
			return
		}
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
	logger.Info("streak provided")
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("get achievements error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	achievements, err := s.streakService.GetAchievements(ctx, employeeID)
	if err != nil {
		logger.Error("get achievements error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting achievements", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"employee_id":  employeeID,
		"achievements": achievements,
	})
	logger.Info("achievements provided")
}

func (s *Server) GetMilestones(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	milestones, err := s.streakService.GetMilestones(ctx)
	if err != nil {
		logger.Error("get milestones error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting milestones", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"milestones": milestones})
	logger.Info("milestones provided")
}

func (s *Server) NextMilestone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("next milestone error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	milestone, err := s.streakService.NextMilestone(ctx, employeeID)
	if err != nil {
		logger.Error("next milestone error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting next milestone", nil)
		return
	}
	if milestone == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, milestone)
	logger.Info("next milestone provided")
}

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	employeeID, err := GetEmployeeIDFromContext(r)
	if err != nil {
		logger.Error("dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	data, err := s.dashboardService.Load(ctx, employeeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("dashboard error: unknown employee")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "employee not found", nil)
			return
		}
		logger.Error("dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while loading dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, data)
	logger.Info("dashboard provided")
}

func isValidationError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "validation")
}
