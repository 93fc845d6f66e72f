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

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(cfg DBConfig) *SettingsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for settingsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &SettingsRepository{
		conn: pool,
	}
}

func NewSettingsRepoWithConn(conn PgConnection) *SettingsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for settingsRepo: " + err.Error())
	}
	return &SettingsRepository{
		conn: conn,
	}
}

// Get returns the single settings row. An empty table reports
// ErrSettingsNotFound so callers can fall back to defaults without
// treating it as a fault.
func (setr *SettingsRepository) Get(ctx context.Context) (*entity.GlobalSettings, error) {
	row := setr.conn.QueryRow(
		ctx,
		`SELECT daily_step_goal, charity_amount_per_goal FROM global_settings LIMIT 1;`,
	)
	var settings entity.GlobalSettings
	if err := row.Scan(&settings.DailyStepGoal, &settings.CharityAmountPerGoal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSettingsNotFound
		}
		return nil, errors.New("getting global settings error: " + err.Error())
	}
	return &settings, nil
}
