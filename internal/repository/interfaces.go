package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/steppulse/steppulse/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new employee row. Unique violations are translated to
	// ErrDeviceRegistered / ErrEmployeeIDTaken by constraint name
	Create(ctx context.Context, user *entity.User) error
	// Looks up employee by device id. Used on app start to resolve identity
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.User, error)
	// Looks up employee by employee id
	FindByEmployeeID(ctx context.Context, employeeID string) (*entity.User, error)
	// Flips Active/Inactive status
	UpdateStatus(ctx context.Context, employeeID string, status entity.UserStatus) error
}

type StepsRepositoryI interface {
	// Upserts one day's record keyed on (employee_id, step_date).
	// Reports whether the row was inserted rather than updated
	Upsert(ctx context.Context, rec *entity.DailyStepRecord) (inserted bool, err error)
	// Provides records for a date range, oldest first
	GetByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]entity.DailyStepRecord, error)
	// Provides most recent records, newest first
	GetRecent(ctx context.Context, employeeID string, limit int) ([]entity.DailyStepRecord, error)
}

type StreaksRepositoryI interface {
	// Returns the user's streak, or ErrStreakNotFound if none recorded yet
	Get(ctx context.Context, employeeID string) (*entity.Streak, error)
	// Upserts the streak row keyed on employee_id
	Upsert(ctx context.Context, streak *entity.Streak) (*entity.Streak, error)
}

type MilestonesRepositoryI interface {
	// Full catalog ordered by milestone_days ascending
	ListAll(ctx context.Context) ([]entity.StreakMilestone, error)
	// Milestone whose required days equals exactly the given value
	GetByDays(ctx context.Context, days int) (*entity.StreakMilestone, error)
	// Smallest milestone strictly above the given streak value
	NextAfter(ctx context.Context, currentStreak int) (*entity.StreakMilestone, error)
	// Inspects if an achievement was already awarded
	AchievementExists(ctx context.Context, employeeID string, milestoneDays int) (bool, error)
	// Awards an achievement. ErrAchievementExists on unique violation
	CreateAchievement(ctx context.Context, achievement *entity.StreakAchievement) error
	// Achievements joined with milestone bonus/description, by milestone_days ascending
	ListAchievements(ctx context.Context, employeeID string) ([]entity.StreakAchievement, error)
}

type SettingsRepositoryI interface {
	// Returns the single global settings row; callers fall back to
	// defaults when the row is absent or malformed
	Get(ctx context.Context) (*entity.GlobalSettings, error)
}

type DashboardRepositoryI interface {
	// Recomputes the server-side aggregate views
	RefreshViews(ctx context.Context) error
	// Top of leaderboard_view ordered by rank ascending
	TopLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
	// Aggregate row for one company site, nil if the view has none yet
	CompanyStats(ctx context.Context, company string) (*entity.CompanyStats, error)
	// Rank figures for one employee via get_user_rank, nil if unranked
	UserRank(ctx context.Context, employeeID string) (*entity.UserRankInfo, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
