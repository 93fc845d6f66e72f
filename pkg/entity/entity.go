package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

type User struct {
	EmployeeID       string     `json:"employee_id"`
	DeviceID         string     `json:"device_id"`
	ProfileName      string     `json:"profile_name"`
	Company          string     `json:"company"`
	DeviceOS         string     `json:"device_os"`
	DeviceModel      string     `json:"device_model"`
	Status           UserStatus `json:"status"`
	RegistrationDate time.Time  `json:"registration_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DailyStepRecord is one employee's step total for one calendar day.
// Identity is (EmployeeID, StepDate); the row is upserted, never duplicated.
type DailyStepRecord struct {
	EmployeeID        string    `json:"employee_id"`
	DeviceID          string    `json:"device_id"`
	StepDate          time.Time `json:"step_date"`
	StepCount         int       `json:"step_count"`
	GoalAchieved      bool      `json:"goal_achieved"`
	BaseCharityAmount float64   `json:"base_charity_amount"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Streak holds one user's consecutive-activity-day counters.
// Invariant: CurrentStreak <= LongestStreak.
type Streak struct {
	EmployeeID       string     `json:"employee_id"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// StreakMilestone is catalog reference data, not user-owned.
type StreakMilestone struct {
	MilestoneID   int     `json:"milestone_id"`
	MilestoneDays int     `json:"milestone_days"`
	BonusAmount   float64 `json:"bonus_amount"`
	Description   string  `json:"description"`
}

// StreakAchievement is created at most once per (user, milestone_days)
// and is immutable afterward.
type StreakAchievement struct {
	ID            uuid.UUID `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	MilestoneDays int       `json:"milestone_days"`
	AchievedDate  time.Time `json:"achieved_date"`
	CreatedAt     time.Time `json:"created_at"`
	BonusAmount   float64   `json:"bonus_amount"`
	Description   string    `json:"description"`
}

type GlobalSettings struct {
	DailyStepGoal        int     `json:"daily_step_goal"`
	CharityAmountPerGoal float64 `json:"charity_amount_per_goal"`
}

type LeaderboardEntry struct {
	Rank               int       `json:"rank"`
	EmployeeID         string    `json:"employee_id"`
	ProfileName        string    `json:"profile_name"`
	Company            string    `json:"company"`
	TotalSteps         int64     `json:"total_steps"`
	TotalCharityAmount float64   `json:"total_charity_amount"`
	LastUpdated        time.Time `json:"last_updated"`
}

type CompanyStats struct {
	Company                string    `json:"company"`
	TotalStepsAllEmployees int64     `json:"total_steps_all_employees"`
	TotalCharityAmount     float64   `json:"total_charity_amount"`
	TotalEmployees         int       `json:"total_employees"`
	LastUpdated            time.Time `json:"last_updated"`
}

type UserRankInfo struct {
	Rank               int     `json:"rank"`
	TotalEmployees     int     `json:"total_employees"`
	TotalSteps         int64   `json:"total_steps"`
	TotalCharityAmount float64 `json:"total_charity_amount"`
}
