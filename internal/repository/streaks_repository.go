package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/pkg/cleanup"
	"github.com/steppulse/steppulse/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (str *StreaksRepository) Get(ctx context.Context, employeeID string) (*entity.Streak, error) {
	row := str.conn.QueryRow(
		ctx,
		`SELECT employee_id, current_streak, longest_streak, last_activity_date, created_at, updated_at
		 FROM streaks WHERE employee_id = $1;`,
		employeeID,
	)
	var streak entity.Streak
	err := row.Scan(
		&streak.EmployeeID,
		&streak.CurrentStreak,
		&streak.LongestStreak,
		&streak.LastActivityDate,
		&streak.CreatedAt,
		&streak.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &streak, nil
}

func (str *StreaksRepository) Upsert(ctx context.Context, streak *entity.Streak) (*entity.Streak, error) {
	if streak == nil {
		return nil, errors.New("streak is nil")
	}
	row := str.conn.QueryRow(
		ctx,
		`INSERT INTO streaks (employee_id, current_streak, longest_streak, last_activity_date)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (employee_id) DO UPDATE SET
		 	current_streak = EXCLUDED.current_streak,
		 	longest_streak = EXCLUDED.longest_streak,
		 	last_activity_date = EXCLUDED.last_activity_date,
		 	updated_at = NOW()
		 RETURNING employee_id, current_streak, longest_streak, last_activity_date, created_at, updated_at;`,
		streak.EmployeeID,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastActivityDate,
	)
	var updated entity.Streak
	err := row.Scan(
		&updated.EmployeeID,
		&updated.CurrentStreak,
		&updated.LongestStreak,
		&updated.LastActivityDate,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return nil, errors.New("upserting streak error: " + err.Error())
	}
	return &updated, nil
}
