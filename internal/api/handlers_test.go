package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steppulse/steppulse/internal/api"
	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/internal/service"
	"github.com/steppulse/steppulse/pkg/entity"
	jwtservice "github.com/steppulse/steppulse/pkg/jwt_service"
	"github.com/steppulse/steppulse/pkg/stepwindow"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDeviceConflict
	stateEmployeeConflict
	stateValidationError
	stateNotFound
	stateStaleDate
	stateThrottled
	stateInactiveWindow
	stateNegativeCount
	stateDBError
)

var (
	employeeID = "K123456"
	deviceID   = "test-device"
	testUser   = &entity.User{
		EmployeeID:  employeeID,
		DeviceID:    deviceID,
		ProfileName: "Test Walker",
		Company:     "Batam",
		Status:      entity.StatusActive,
	}
	testStreak = &entity.Streak{
		EmployeeID:    employeeID,
		CurrentStreak: 3,
		LongestStreak: 5,
	}
)

type RegistrationServiceMock struct {
	state mockState
}

func (rsmock *RegistrationServiceMock) ChangeState(state mockState) {
	rsmock.state = state
}

func (rsmock *RegistrationServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	switch rsmock.state {
	case stateSuccess:
		return testUser, nil
	case stateDeviceConflict:
		return nil, errorvalues.ErrDeviceRegistered
	case stateEmployeeConflict:
		return nil, errorvalues.ErrEmployeeIDTaken
	case stateValidationError:
		return nil, errors.New("validation error: bad employee id")
	}
	return nil, errors.New("mocked error")
}

func (rsmock *RegistrationServiceMock) SetStatus(ctx context.Context, employeeID string, status entity.UserStatus) error {
	switch rsmock.state {
	case stateSuccess:
		return nil
	case stateValidationError:
		return errorvalues.ErrInvalidStatus
	case stateNotFound:
		return errorvalues.ErrUserNotFound
	}
	return errors.New("mocked error")
}

func (rsmock *RegistrationServiceMock) LookupByDevice(ctx context.Context, deviceID string) (*entity.User, error) {
	switch rsmock.state {
	case stateSuccess:
		return testUser, nil
	case stateNotFound:
		return nil, errorvalues.ErrUserNotFound
	}
	return nil, errors.New("mocked error")
}

type SyncServiceMock struct {
	state mockState
}

func (ssmock *SyncServiceMock) ChangeState(state mockState) {
	ssmock.state = state
}

func (ssmock *SyncServiceMock) SyncSteps(ctx context.Context, employeeID, deviceID string, reported []stepwindow.DayBucket, auto bool) (*service.SyncResult, error) {
	switch ssmock.state {
	case stateSuccess:
		activity := stepwindow.DateOf(time.Now())
		return &service.SyncResult{
			RecordsProcessed: stepwindow.WindowDays,
			RecordsInserted:  stepwindow.WindowDays,
			LatestActiveDay:  &activity,
		}, nil
	case stateInactiveWindow:
		return &service.SyncResult{
			RecordsProcessed: stepwindow.WindowDays,
			RecordsInserted:  stepwindow.WindowDays,
		}, nil
	case stateThrottled:
		return &service.SyncResult{Throttled: true}, nil
	case stateNegativeCount:
		return nil, stepwindow.ErrNegativeStepCount
	}
	return nil, errors.New("mocked error")
}

func (ssmock *SyncServiceMock) RecentRecords(ctx context.Context, employeeID string, limit int) ([]entity.DailyStepRecord, error) {
	if ssmock.state == stateSuccess {
		return []entity.DailyStepRecord{
			{EmployeeID: employeeID, StepCount: 12000, GoalAchieved: true},
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (ssmock *SyncServiceMock) HistoryRecords(ctx context.Context, employeeID string, from, to time.Time) ([]entity.DailyStepRecord, error) {
	switch ssmock.state {
	case stateSuccess:
		return []entity.DailyStepRecord{
			{EmployeeID: employeeID, StepDate: from, StepCount: 8000},
			{EmployeeID: employeeID, StepDate: to, StepCount: 12000, GoalAchieved: true},
		}, nil
	case stateValidationError:
		return nil, errorvalues.ErrInvalidDateRange
	}
	return nil, errors.New("mocked error")
}

type StreakServiceMock struct {
	state mockState
}

func (stmock *StreakServiceMock) ChangeState(state mockState) {
	stmock.state = state
}

func (stmock *StreakServiceMock) Reconcile(ctx context.Context, employeeID string, activityDate time.Time) (*service.StreakUpdateResult, error) {
	switch stmock.state {
	case stateSuccess:
		return &service.StreakUpdateResult{
			Streak:            testStreak,
			NewAchievements:   []entity.StreakAchievement{},
			StreakIncremented: true,
		}, nil
	case stateStaleDate:
		return nil, errorvalues.ErrStaleActivityDate
	}
	return nil, errors.New("mocked error")
}

func (stmock *StreakServiceMock) GetStreak(ctx context.Context, employeeID string) (*entity.Streak, error) {
	switch stmock.state {
	case stateSuccess:
		return testStreak, nil
	case stateNotFound:
		return nil, errorvalues.ErrStreakNotFound
	}
	return nil, errors.New("mocked error")
}

func (stmock *StreakServiceMock) GetAchievements(ctx context.Context, employeeID string) ([]entity.StreakAchievement, error) {
	if stmock.state == stateSuccess {
		return []entity.StreakAchievement{
			{EmployeeID: employeeID, MilestoneDays: 7, BonusAmount: 10.0},
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (stmock *StreakServiceMock) GetMilestones(ctx context.Context) ([]entity.StreakMilestone, error) {
	if stmock.state == stateSuccess {
		return []entity.StreakMilestone{
			{MilestoneID: 1, MilestoneDays: 1, BonusAmount: 5.0},
			{MilestoneID: 2, MilestoneDays: 3, BonusAmount: 7.5},
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (stmock *StreakServiceMock) NextMilestone(ctx context.Context, employeeID string) (*entity.StreakMilestone, error) {
	switch stmock.state {
	case stateSuccess:
		return &entity.StreakMilestone{MilestoneID: 4, MilestoneDays: 14, BonusAmount: 20.0}, nil
	case stateNotFound:
		return nil, nil
	}
	return nil, errors.New("mocked error")
}

type DashboardServiceMock struct {
	state mockState
}

func (dsmock *DashboardServiceMock) ChangeState(state mockState) {
	dsmock.state = state
}

func (dsmock *DashboardServiceMock) Load(ctx context.Context, employeeID string) (*service.DashboardData, error) {
	switch dsmock.state {
	case stateSuccess:
		return &service.DashboardData{
			Leaderboard: []entity.LeaderboardEntry{{Rank: 1, EmployeeID: employeeID}},
			UserRank:    &entity.UserRankInfo{Rank: 1, TotalEmployees: 10},
		}, nil
	case stateNotFound:
		return nil, errorvalues.ErrUserNotFound
	}
	return nil, errors.New("mocked error")
}

func authedRequest(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), "Employee-ID", employeeID)
	ctx = context.WithValue(ctx, "Device-ID", deviceID)
	return r.WithContext(ctx)
}

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		EmployeeID:  employeeID,
		DeviceID:    deviceID,
		ProfileName: "Test Walker",
		Company:     "Batam",
	})
	require.NoError(t, err)
	mock := RegistrationServiceMock{}
	serv := api.New(&api.ServicesList{
		RegistrationService: &mock,
		JwtService:          jwtservice.New("secret"),
	})
	testCases := []struct {
		Desc         string
		State        mockState
		Body         []byte
		ExpectedCode int
	}{
		{
			Desc:         "registered",
			State:        stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusCreated,
		},
		{
			Desc:         "device conflict",
			State:        stateDeviceConflict,
			Body:         body,
			ExpectedCode: http.StatusConflict,
		},
		{
			Desc:         "employee id conflict",
			State:        stateEmployeeConflict,
			Body:         body,
			ExpectedCode: http.StatusConflict,
		},
		{
			Desc:         "validation error",
			State:        stateValidationError,
			Body:         body,
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
		},
		{
			Desc:         "invalid body",
			State:        stateSuccess,
			Body:         []byte("{not json"),
			ExpectedCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/register", bytes.NewReader(tc.Body))
			serv.Register(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusCreated {
				var resp api.SessionResponse
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, employeeID, resp.User.EmployeeID)
				assert.NotEmpty(t, resp.Token)
			}
		})
	}
}

func TestDeviceSession(t *testing.T) {
	mock := RegistrationServiceMock{}
	serv := api.New(&api.ServicesList{
		RegistrationService: &mock,
		JwtService:          jwtservice.New("secret"),
	})
	testCases := []struct {
		Desc         string
		State        mockState
		DeviceID     string
		ExpectedCode int
	}{
		{
			Desc:         "session issued",
			State:        stateSuccess,
			DeviceID:     deviceID,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "unknown device",
			State:        stateNotFound,
			DeviceID:     deviceID,
			ExpectedCode: http.StatusNotFound,
		},
		{
			Desc:         "missing header",
			State:        stateSuccess,
			DeviceID:     "",
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			DeviceID:     deviceID,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
			if tc.DeviceID != "" {
				r.Header.Set("X-Device-ID", tc.DeviceID)
			}
			serv.DeviceSession(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestSyncSteps(t *testing.T) {
	today := stepwindow.FormatDate(time.Now())
	body, err := sonic.ConfigDefault.Marshal(api.SyncStepsRequest{
		Days: []api.ReportedDay{{Date: today, StepCount: 10000}},
	})
	require.NoError(t, err)
	syncMock := SyncServiceMock{}
	streakMock := StreakServiceMock{}
	serv := api.New(&api.ServicesList{
		SyncService:   &syncMock,
		StreakService: &streakMock,
	})
	testCases := []struct {
		Desc         string
		SyncState    mockState
		StreakState  mockState
		Body         []byte
		ExpectedCode int
		WantStreak   bool
	}{
		{
			Desc:         "synced with streak",
			SyncState:    stateSuccess,
			StreakState:  stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusOK,
			WantStreak:   true,
		},
		{
			Desc:         "throttled skips streak",
			SyncState:    stateThrottled,
			StreakState:  stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "no stored active day skips streak",
			SyncState:    stateInactiveWindow,
			StreakState:  stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "stale streak date swallowed",
			SyncState:    stateSuccess,
			StreakState:  stateStaleDate,
			Body:         body,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "negative count",
			SyncState:    stateNegativeCount,
			StreakState:  stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "invalid date in payload",
			SyncState:    stateSuccess,
			StreakState:  stateSuccess,
			Body:         []byte(`{"days":[{"date":"10-06-2025","step_count":100}]}`),
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "invalid body",
			SyncState:    stateSuccess,
			StreakState:  stateSuccess,
			Body:         []byte("{not json"),
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "service error",
			SyncState:    stateDBError,
			StreakState:  stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			syncMock.ChangeState(tc.SyncState)
			streakMock.ChangeState(tc.StreakState)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/steps/sync", bytes.NewReader(tc.Body))
			serv.SyncSteps(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				var resp api.SyncStepsResponse
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				if tc.WantStreak {
					assert.NotNil(t, resp.Streak)
				} else {
					assert.Nil(t, resp.Streak)
				}
			}
		})
	}

	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/steps/sync", bytes.NewReader(body))
		serv.SyncSteps(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestRecentSteps(t *testing.T) {
	syncMock := SyncServiceMock{}
	serv := api.New(&api.ServicesList{
		SyncService: &syncMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		Limit        string
		ExpectedCode int
	}{
		{
			Desc:         "success",
			State:        stateSuccess,
			Limit:        "7",
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "out of range limit falls back",
			State:        stateSuccess,
			Limit:        strconv.Itoa(100),
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			Limit:        "7",
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			syncMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/steps/recent?limit="+tc.Limit, nil)
			serv.RecentSteps(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestStepsHistory(t *testing.T) {
	syncMock := SyncServiceMock{}
	serv := api.New(&api.ServicesList{
		SyncService: &syncMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		Query        string
		ExpectedCode int
	}{
		{
			Desc:         "success",
			State:        stateSuccess,
			Query:        "?from=2025-06-01&to=2025-06-10",
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "missing from",
			State:        stateSuccess,
			Query:        "?to=2025-06-10",
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "malformed to",
			State:        stateSuccess,
			Query:        "?from=2025-06-01&to=10-06-2025",
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "inverted range",
			State:        stateValidationError,
			Query:        "?from=2025-06-10&to=2025-06-01",
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			Query:        "?from=2025-06-01&to=2025-06-10",
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			syncMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/steps/history"+tc.Query, nil)
			serv.StepsHistory(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/steps/history?from=2025-06-01&to=2025-06-10", nil)
		serv.StepsHistory(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestUpdateStatus(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.UpdateStatusRequest{Status: "Inactive"})
	require.NoError(t, err)
	registrationMock := RegistrationServiceMock{}
	serv := api.New(&api.ServicesList{
		RegistrationService: &registrationMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		Body         []byte
		ExpectedCode int
	}{
		{
			Desc:         "success",
			State:        stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "unknown status value",
			State:        stateValidationError,
			Body:         []byte(`{"status":"Paused"}`),
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "user not found",
			State:        stateNotFound,
			Body:         body,
			ExpectedCode: http.StatusNotFound,
		},
		{
			Desc:         "invalid body",
			State:        stateSuccess,
			Body:         []byte("{not json"),
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			registrationMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/api/v1/status", bytes.NewReader(tc.Body))
			serv.UpdateStatus(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestReconcileStreak(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.ReconcileStreakRequest{
		ActivityDate: "2025-06-10",
	})
	require.NoError(t, err)
	streakMock := StreakServiceMock{}
	serv := api.New(&api.ServicesList{
		StreakService: &streakMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		Body         []byte
		ExpectedCode int
	}{
		{
			Desc:         "reconciled",
			State:        stateSuccess,
			Body:         body,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "stale activity date",
			State:        stateStaleDate,
			Body:         body,
			ExpectedCode: http.StatusConflict,
		},
		{
			Desc:         "invalid date",
			State:        stateSuccess,
			Body:         []byte(`{"activity_date":"June 10"}`),
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "invalid body",
			State:        stateSuccess,
			Body:         []byte("{not json"),
			ExpectedCode: http.StatusBadRequest,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			streakMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/streak/reconcile", bytes.NewReader(tc.Body))
			serv.ReconcileStreak(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGetStreak(t *testing.T) {
	streakMock := StreakServiceMock{}
	serv := api.New(&api.ServicesList{
		StreakService: &streakMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		ExpectedCode int
	}{
		{
			Desc:         "success",
			State:        stateSuccess,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "no streak yet",
			State:        stateNotFound,
			ExpectedCode: http.StatusNotFound,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			streakMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/streak", nil)
			serv.GetStreak(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestNextMilestone(t *testing.T) {
	streakMock := StreakServiceMock{}
	serv := api.New(&api.ServicesList{
		StreakService: &streakMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		ExpectedCode int
	}{
		{
			Desc:         "next milestone",
			State:        stateSuccess,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "catalog exhausted",
			State:        stateNotFound,
			ExpectedCode: http.StatusNoContent,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			streakMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/streak/milestones/next", nil)
			serv.NextMilestone(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestDashboard(t *testing.T) {
	dashboardMock := DashboardServiceMock{}
	serv := api.New(&api.ServicesList{
		DashboardService: &dashboardMock,
	})
	testCases := []struct {
		Desc         string
		State        mockState
		ExpectedCode int
	}{
		{
			Desc:         "success",
			State:        stateSuccess,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "unknown employee",
			State:        stateNotFound,
			ExpectedCode: http.StatusNotFound,
		},
		{
			Desc:         "service error",
			State:        stateDBError,
			ExpectedCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			dashboardMock.ChangeState(tc.State)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
			serv.Dashboard(rr, authedRequest(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	eid, err := api.GetEmployeeIDFromContext(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"employee_id": "` + eid + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		JwtService: jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))

	token, err := jwtService.GenerateToken(testUser)
	require.NoError(t, err)
	foreignToken, err := jwtservice.New("other-secret").GenerateToken(testUser)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		AuthHeader   string
		ExpectedCode int
	}{
		{
			Desc:         "valid token",
			AuthHeader:   "Bearer " + token,
			ExpectedCode: http.StatusOK,
		},
		{
			Desc:         "missing header",
			AuthHeader:   "",
			ExpectedCode: http.StatusUnauthorized,
		},
		{
			Desc:         "malformed header",
			AuthHeader:   token,
			ExpectedCode: http.StatusUnauthorized,
		},
		{
			Desc:         "wrong signature",
			AuthHeader:   "Bearer " + foreignToken,
			ExpectedCode: http.StatusUnauthorized,
		},
		{
			Desc:         "garbage token",
			AuthHeader:   "Bearer not.a.token",
			ExpectedCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/streak", nil)
			if tc.AuthHeader != "" {
				r.Header.Set("Authorization", tc.AuthHeader)
			}
			handler.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}
