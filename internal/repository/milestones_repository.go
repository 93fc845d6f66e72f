package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/pkg/cleanup"
	"github.com/steppulse/steppulse/pkg/entity"
)

// MilestonesRepository serves the static milestone catalog and the
// per-user achievement rows awarded against it.
type MilestonesRepository struct {
	conn PgConnection
}

func NewMilestonesRepo(cfg DBConfig) *MilestonesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for milestonesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for milestonesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &MilestonesRepository{
		conn: pool,
	}
}

func NewMilestonesRepoWithConn(conn PgConnection) *MilestonesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for milestonesRepo: " + err.Error())
	}
	return &MilestonesRepository{
		conn: conn,
	}
}

func (mr *MilestonesRepository) ListAll(ctx context.Context) ([]entity.StreakMilestone, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT milestone_id, milestone_days, bonus_amount, description FROM streak_milestones ORDER BY milestone_days ASC;`,
	)
	if err != nil {
		return nil, errors.New("listing milestones error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.StreakMilestone, 0, 8)
	for rows.Next() {
		var m entity.StreakMilestone
		if err = rows.Scan(&m.MilestoneID, &m.MilestoneDays, &m.BonusAmount, &m.Description); err != nil {
			return nil, errors.New("milestone row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected milestone rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (mr *MilestonesRepository) GetByDays(ctx context.Context, days int) (*entity.StreakMilestone, error) {
	row := mr.conn.QueryRow(
		ctx,
		`SELECT milestone_id, milestone_days, bonus_amount, description FROM streak_milestones WHERE milestone_days = $1;`,
		days,
	)
	var m entity.StreakMilestone
	if err := row.Scan(&m.MilestoneID, &m.MilestoneDays, &m.BonusAmount, &m.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMilestoneNotFound
		}
		return nil, errors.New("getting milestone by days error: " + err.Error())
	}
	return &m, nil
}

func (mr *MilestonesRepository) NextAfter(ctx context.Context, currentStreak int) (*entity.StreakMilestone, error) {
	row := mr.conn.QueryRow(
		ctx,
		`SELECT milestone_id, milestone_days, bonus_amount, description FROM streak_milestones WHERE milestone_days > $1 ORDER BY milestone_days ASC LIMIT 1;`,
		currentStreak,
	)
	var m entity.StreakMilestone
	if err := row.Scan(&m.MilestoneID, &m.MilestoneDays, &m.BonusAmount, &m.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMilestoneNotFound
		}
		return nil, errors.New("getting next milestone error: " + err.Error())
	}
	return &m, nil
}

func (mr *MilestonesRepository) AchievementExists(ctx context.Context, employeeID string, milestoneDays int) (bool, error) {
	var exists bool
	row := mr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM user_streak_achievements WHERE employee_id = $1 AND milestone_days = $2);`,
		employeeID,
		milestoneDays,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if achievement exists error: " + err.Error())
	}
	return exists, nil
}

func (mr *MilestonesRepository) CreateAchievement(ctx context.Context, achievement *entity.StreakAchievement) error {
	if achievement == nil {
		return errors.New("achievement is nil")
	}
	_, err := mr.conn.Exec(
		ctx,
		`INSERT INTO user_streak_achievements (id, employee_id, milestone_days, achieved_date) VALUES ($1, $2, $3, $4);`,
		achievement.ID,
		achievement.EmployeeID,
		achievement.MilestoneDays,
		achievement.AchievedDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: achievement already awarded once
			case "23505":
				return errorvalues.ErrAchievementExists
			// FK violation: no such milestone in the catalog
			case "23503":
				return errorvalues.ErrMilestoneNotFound
			}
		}
		return errors.New("creating achievement error: " + err.Error())
	}
	return nil
}

func (mr *MilestonesRepository) ListAchievements(ctx context.Context, employeeID string) ([]entity.StreakAchievement, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT a.id, a.employee_id, a.milestone_days, a.achieved_date, a.created_at, m.bonus_amount, m.description
		 FROM user_streak_achievements a
		 JOIN streak_milestones m ON m.milestone_days = a.milestone_days
		 WHERE a.employee_id = $1 ORDER BY a.milestone_days ASC;`,
		employeeID,
	)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.StreakAchievement, 0, 4)
	for rows.Next() {
		var a entity.StreakAchievement
		err = rows.Scan(&a.ID, &a.EmployeeID, &a.MilestoneDays, &a.AchievedDate, &a.CreatedAt, &a.BonusAmount, &a.Description)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}
