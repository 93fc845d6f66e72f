package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/steppulse/steppulse/pkg/cleanup"
	"github.com/steppulse/steppulse/pkg/entity"
)

type StepsRepository struct {
	conn PgConnection
}

func NewStepsRepo(cfg DBConfig) *StepsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for stepsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stepsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StepsRepository{
		conn: pool,
	}
}

func NewStepsRepoWithConn(conn PgConnection) *StepsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for stepsRepo: " + err.Error())
	}
	return &StepsRepository{
		conn: conn,
	}
}

// Upsert writes one day's record. A second sync for the same day overwrites
// count/goal/amount/device instead of creating a duplicate. xmax = 0 only on
// freshly inserted rows, which is how insert is told apart from update.
func (sr *StepsRepository) Upsert(ctx context.Context, rec *entity.DailyStepRecord) (bool, error) {
	if rec == nil {
		return false, errors.New("step record is nil")
	}
	row := sr.conn.QueryRow(
		ctx,
		`INSERT INTO daily_steps (employee_id, device_id, step_date, step_count, goal_achieved, base_charity_amount)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (employee_id, step_date) DO UPDATE SET
		 	step_count = EXCLUDED.step_count,
		 	goal_achieved = EXCLUDED.goal_achieved,
		 	base_charity_amount = EXCLUDED.base_charity_amount,
		 	device_id = EXCLUDED.device_id,
		 	updated_at = NOW()
		 RETURNING (xmax = 0);`,
		rec.EmployeeID,
		rec.DeviceID,
		rec.StepDate,
		rec.StepCount,
		rec.GoalAchieved,
		rec.BaseCharityAmount,
	)
	var inserted bool
	if err := row.Scan(&inserted); err != nil {
		return false, errors.New("upserting step record error: " + err.Error())
	}
	return inserted, nil
}

func (sr *StepsRepository) GetByEmployeeAndDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]entity.DailyStepRecord, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT employee_id, device_id, step_date, step_count, goal_achieved, base_charity_amount, created_at, updated_at
		 FROM daily_steps WHERE employee_id = $1 AND step_date >= $2 AND step_date <= $3 ORDER BY step_date ASC;`,
		employeeID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting step records for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyStepRecord, 0, 7)
	for rows.Next() {
		var rec entity.DailyStepRecord
		err = rows.Scan(
			&rec.EmployeeID,
			&rec.DeviceID,
			&rec.StepDate,
			&rec.StepCount,
			&rec.GoalAchieved,
			&rec.BaseCharityAmount,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("step record row parsing error: " + err.Error())
		}
		result = append(result, rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected step record rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (sr *StepsRepository) GetRecent(ctx context.Context, employeeID string, limit int) ([]entity.DailyStepRecord, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT employee_id, device_id, step_date, step_count, goal_achieved, base_charity_amount, created_at, updated_at
		 FROM daily_steps WHERE employee_id = $1 ORDER BY step_date DESC LIMIT $2;`,
		employeeID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent step records error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyStepRecord, 0, limit)
	for rows.Next() {
		var rec entity.DailyStepRecord
		err = rows.Scan(
			&rec.EmployeeID,
			&rec.DeviceID,
			&rec.StepDate,
			&rec.StepCount,
			&rec.GoalAchieved,
			&rec.BaseCharityAmount,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("step record row parsing error: " + err.Error())
		}
		result = append(result, rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected step record rows error: " + rows.Err().Error())
	}
	return result, nil
}
