package service

import (
	"context"
	"time"

	"github.com/steppulse/steppulse/pkg/entity"
	"github.com/steppulse/steppulse/pkg/stepwindow"
)

type RegisterRequest struct {
	EmployeeID  string `validate:"required,employee_id"`
	DeviceID    string `validate:"required"`
	ProfileName string `validate:"required,min=2,max=100"`
	Company     string `validate:"required,oneof=Batam Tuas Zhoushan"`
	DeviceOS    string `validate:"max=100"`
	DeviceModel string `validate:"max=100"`
}

// SyncResult is the per-batch outcome of a 7-day reconciliation. Success
// covers the batch as a whole: per-day write failures are skipped, not fatal.
type SyncResult struct {
	RecordsProcessed int  `json:"records_processed"`
	RecordsInserted  int  `json:"records_inserted"`
	RecordsUpdated   int  `json:"records_updated"`
	Throttled        bool `json:"throttled,omitempty"`
	// Newest committed day with a positive step count, nil when the
	// whole window was inactive. Streak reconciliation keys off it so
	// only stored days can advance a streak.
	LatestActiveDay *time.Time `json:"-"`
}

// StreakUpdateResult reports one reconciliation: the state after it, any
// newly awarded achievements and which transition happened, for UI feedback.
type StreakUpdateResult struct {
	Streak            *entity.Streak             `json:"streak"`
	NewAchievements   []entity.StreakAchievement `json:"new_achievements"`
	StreakIncremented bool                       `json:"streak_incremented"`
	StreakReset       bool                       `json:"streak_reset"`
}

type DashboardData struct {
	Leaderboard  []entity.LeaderboardEntry `json:"leaderboard"`
	CompanyStats *entity.CompanyStats      `json:"company_stats"`
	UserRank     *entity.UserRankInfo      `json:"user_rank"`
}

type RegistrationServiceI interface {
	// Validates the request, pre-checks both identity axes and creates
	// the employee. Device and employee-id collisions come back as
	// distinct sentinel errors
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Resolves a device id to its employee, for app-start identity lookup
	LookupByDevice(ctx context.Context, deviceID string) (*entity.User, error)
	// Flips the employee between Active and Inactive
	SetStatus(ctx context.Context, employeeID string, status entity.UserStatus) error
}

type SyncServiceI interface {
	// Reconciles a reported 7-day window into daily_steps, one upserted
	// record per day. auto consults the sync gate before doing any work
	SyncSteps(ctx context.Context, employeeID, deviceID string, reported []stepwindow.DayBucket, auto bool) (*SyncResult, error)
	// Most recent stored records, newest first
	RecentRecords(ctx context.Context, employeeID string, limit int) ([]entity.DailyStepRecord, error)
	// Stored records between two dates inclusive, oldest first
	HistoryRecords(ctx context.Context, employeeID string, from, to time.Time) ([]entity.DailyStepRecord, error)
}

type StreakServiceI interface {
	// Applies one activity date to the user's streak and awards any
	// milestone crossed exactly by the new value
	Reconcile(ctx context.Context, employeeID string, activityDate time.Time) (*StreakUpdateResult, error)
	GetStreak(ctx context.Context, employeeID string) (*entity.Streak, error)
	GetAchievements(ctx context.Context, employeeID string) ([]entity.StreakAchievement, error)
	GetMilestones(ctx context.Context) ([]entity.StreakMilestone, error)
	// Smallest milestone above the user's current streak, nil when the
	// catalog is exhausted
	NextMilestone(ctx context.Context, employeeID string) (*entity.StreakMilestone, error)
}

type DashboardServiceI interface {
	// Refreshes the aggregate views, then loads leaderboard, company
	// stats and the user's rank
	Load(ctx context.Context, employeeID string) (*DashboardData, error)
}
