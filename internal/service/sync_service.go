package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/internal/repository"
	"github.com/steppulse/steppulse/internal/syncgate"
	"github.com/steppulse/steppulse/pkg/entity"
	"github.com/steppulse/steppulse/pkg/stepwindow"
)

const (
	defaultDailyStepGoal = 10000
	defaultCharityAmount = 15.0
)

type SyncService struct {
	stepsRepo    repository.StepsRepositoryI
	settingsRepo repository.SettingsRepositoryI
	gate         syncgate.GateI
	now          func() time.Time
}

func NewSyncService(stepsRepo repository.StepsRepositoryI, settingsRepo repository.SettingsRepositoryI, gate syncgate.GateI) *SyncService {
	return NewSyncServiceWithClock(stepsRepo, settingsRepo, gate, time.Now)
}

func NewSyncServiceWithClock(stepsRepo repository.StepsRepositoryI, settingsRepo repository.SettingsRepositoryI, gate syncgate.GateI, now func() time.Time) *SyncService {
	if stepsRepo == nil || settingsRepo == nil || gate == nil || now == nil {
		log.Fatal("on sync service provided nil dependencies")
	}
	return &SyncService{
		stepsRepo:    stepsRepo,
		settingsRepo: settingsRepo,
		gate:         gate,
		now:          now,
	}
}

// SyncSteps reconciles a reported window into exactly one record per day.
// Goal and charity are derived from global settings, defaults when the
// settings row is missing or malformed. Each day is awaited sequentially
// and committed independently: a failed day is logged and skipped, earlier
// days stay written. Only an unusable window fails the batch.
func (ss *SyncService) SyncSteps(ctx context.Context, employeeID, deviceID string, reported []stepwindow.DayBucket, auto bool) (*SyncResult, error) {
	if auto {
		should, err := ss.gate.ShouldAutoSync(ctx, employeeID)
		if err != nil {
			return nil, errors.New("sync gate error: " + err.Error())
		}
		if !should {
			return &SyncResult{Throttled: true}, nil
		}
	}

	window, err := stepwindow.Normalize(reported, ss.now())
	if err != nil {
		if errors.Is(err, stepwindow.ErrNegativeStepCount) {
			return nil, err
		}
		return nil, errors.New("normalizing step window error: " + err.Error())
	}

	settings := ss.loadSettings(ctx)

	result := &SyncResult{}
	for _, day := range window {
		goalAchieved := day.StepCount >= settings.DailyStepGoal
		charity := 0.0
		if goalAchieved {
			charity = settings.CharityAmountPerGoal
		}
		inserted, err := ss.stepsRepo.Upsert(ctx, &entity.DailyStepRecord{
			EmployeeID:        employeeID,
			DeviceID:          deviceID,
			StepDate:          day.Date,
			StepCount:         day.StepCount,
			GoalAchieved:      goalAchieved,
			BaseCharityAmount: charity,
		})
		if err != nil {
			slog.Warn("skipping day in step sync",
				slog.String("employee_id", employeeID),
				slog.String("step_date", stepwindow.FormatDate(day.Date)),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.RecordsProcessed++
		if inserted {
			result.RecordsInserted++
		} else {
			result.RecordsUpdated++
		}
		if day.StepCount > 0 {
			// The window is ordered oldest first, so the last committed
			// active day is the newest one
			stepDate := day.Date
			result.LatestActiveDay = &stepDate
		}
	}

	if err := ss.gate.MarkSynced(ctx, employeeID); err != nil {
		// The gate only throttles; losing one timestamp write is not
		// worth failing a committed batch over
		slog.Warn("recording sync time failed", slog.String("error", err.Error()))
	}
	return result, nil
}

func (ss *SyncService) RecentRecords(ctx context.Context, employeeID string, limit int) ([]entity.DailyStepRecord, error) {
	records, err := ss.stepsRepo.GetRecent(ctx, employeeID, limit)
	if err != nil {
		return nil, errors.New("steps repository error: " + err.Error())
	}
	return records, nil
}

// HistoryRecords returns stored records between two dates inclusive,
// oldest first. The range may be wider than the sync window.
func (ss *SyncService) HistoryRecords(ctx context.Context, employeeID string, from, to time.Time) ([]entity.DailyStepRecord, error) {
	from = stepwindow.DateOf(from)
	to = stepwindow.DateOf(to)
	if to.Before(from) {
		return nil, errorvalues.ErrInvalidDateRange
	}
	records, err := ss.stepsRepo.GetByEmployeeAndDateRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, errors.New("steps repository error: " + err.Error())
	}
	return records, nil
}

func (ss *SyncService) loadSettings(ctx context.Context) entity.GlobalSettings {
	fallback := entity.GlobalSettings{
		DailyStepGoal:        defaultDailyStepGoal,
		CharityAmountPerGoal: defaultCharityAmount,
	}
	settings, err := ss.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return fallback
	}
	if settings.DailyStepGoal <= 0 {
		settings.DailyStepGoal = defaultDailyStepGoal
	}
	if settings.CharityAmountPerGoal <= 0 {
		settings.CharityAmountPerGoal = defaultCharityAmount
	}
	return *settings
}
