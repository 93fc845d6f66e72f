package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/internal/repository"
	"github.com/steppulse/steppulse/pkg/entity"
	"github.com/steppulse/steppulse/pkg/stepwindow"
)

type StreakService struct {
	streaksRepo    repository.StreaksRepositoryI
	milestonesRepo repository.MilestonesRepositoryI
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI, milestonesRepo repository.MilestonesRepositoryI) *StreakService {
	if streaksRepo == nil || milestonesRepo == nil {
		log.Fatal("on streak service provided nil repos")
	}
	return &StreakService{
		streaksRepo:    streaksRepo,
		milestonesRepo: milestonesRepo,
	}
}

// Reconcile applies one activity date to the user's streak:
// no prior record starts at 1, the same date twice is a no-op, exactly
// +1 day increments, a wider gap resets to 1. The longest counter only
// ever grows. An activity date older than the last recorded one is
// rejected outright rather than being misread as a gap.
func (sts *StreakService) Reconcile(ctx context.Context, employeeID string, activityDate time.Time) (*StreakUpdateResult, error) {
	activityDate = stepwindow.DateOf(activityDate)

	existing, err := sts.streaksRepo.Get(ctx, employeeID)
	if err != nil && !errors.Is(err, errorvalues.ErrStreakNotFound) {
		return nil, errors.New("streaks repository error: " + err.Error())
	}

	newCurrent := 1
	newLongest := 1
	incremented := false
	reset := false

	if existing != nil && existing.LastActivityDate != nil {
		days := stepwindow.DaysBetween(*existing.LastActivityDate, activityDate)
		switch {
		case days < 0:
			return nil, errorvalues.ErrStaleActivityDate
		case days == 0:
			return &StreakUpdateResult{
				Streak:          existing,
				NewAchievements: []entity.StreakAchievement{},
			}, nil
		case days == 1:
			newCurrent = existing.CurrentStreak + 1
			incremented = true
		default:
			newCurrent = 1
			reset = true
		}
	}
	if existing != nil {
		newLongest = max(newCurrent, existing.LongestStreak)
	}

	updated, err := sts.streaksRepo.Upsert(ctx, &entity.Streak{
		EmployeeID:       employeeID,
		CurrentStreak:    newCurrent,
		LongestStreak:    newLongest,
		LastActivityDate: &activityDate,
	})
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}

	achievements := sts.awardMilestones(ctx, employeeID, newCurrent, activityDate)

	return &StreakUpdateResult{
		Streak:            updated,
		NewAchievements:   achievements,
		StreakIncremented: incremented,
		StreakReset:       reset,
	}, nil
}

// awardMilestones creates an achievement for the milestone whose required
// days equals the new streak exactly, once per unique milestone value.
// Failures here never fail the reconciliation: the streak is already
// committed, the award can be retried the next time the value is reached.
func (sts *StreakService) awardMilestones(ctx context.Context, employeeID string, currentStreak int, achievedDate time.Time) []entity.StreakAchievement {
	awarded := []entity.StreakAchievement{}
	milestone, err := sts.milestonesRepo.GetByDays(ctx, currentStreak)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrMilestoneNotFound) {
			slog.Warn("milestone lookup failed", slog.String("error", err.Error()))
		}
		return awarded
	}
	exists, err := sts.milestonesRepo.AchievementExists(ctx, employeeID, milestone.MilestoneDays)
	if err != nil {
		slog.Warn("achievement check failed", slog.String("error", err.Error()))
		return awarded
	}
	if exists {
		return awarded
	}
	achievement := entity.StreakAchievement{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		MilestoneDays: milestone.MilestoneDays,
		AchievedDate:  achievedDate,
		BonusAmount:   milestone.BonusAmount,
		Description:   milestone.Description,
	}
	err = sts.milestonesRepo.CreateAchievement(ctx, &achievement)
	if err != nil {
		// A concurrent reconcile may have won the insert; either way the
		// milestone stays awarded exactly once
		if !errors.Is(err, errorvalues.ErrAchievementExists) {
			slog.Warn("creating achievement failed", slog.String("error", err.Error()))
		}
		return awarded
	}
	return append(awarded, achievement)
}

func (sts *StreakService) GetStreak(ctx context.Context, employeeID string) (*entity.Streak, error) {
	streak, err := sts.streaksRepo.Get(ctx, employeeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return nil, err
		}
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}

func (sts *StreakService) GetAchievements(ctx context.Context, employeeID string) ([]entity.StreakAchievement, error) {
	achievements, err := sts.milestonesRepo.ListAchievements(ctx, employeeID)
	if err != nil {
		return nil, errors.New("milestones repository error: " + err.Error())
	}
	return achievements, nil
}

func (sts *StreakService) GetMilestones(ctx context.Context) ([]entity.StreakMilestone, error) {
	milestones, err := sts.milestonesRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.New("milestones repository error: " + err.Error())
	}
	return milestones, nil
}

func (sts *StreakService) NextMilestone(ctx context.Context, employeeID string) (*entity.StreakMilestone, error) {
	current := 0
	streak, err := sts.streaksRepo.Get(ctx, employeeID)
	if err != nil && !errors.Is(err, errorvalues.ErrStreakNotFound) {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if streak != nil {
		current = streak.CurrentStreak
	}
	milestone, err := sts.milestonesRepo.NextAfter(ctx, current)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMilestoneNotFound) {
			return nil, nil
		}
		return nil, errors.New("milestones repository error: " + err.Error())
	}
	return milestone, nil
}
