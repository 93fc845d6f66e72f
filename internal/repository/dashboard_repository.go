package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/steppulse/steppulse/pkg/cleanup"
	"github.com/steppulse/steppulse/pkg/entity"
)

// DashboardRepository reads the derived projections: leaderboard_view,
// company_stats_view and the get_user_rank function. These are rebuilt
// server-side from daily_steps and never written to directly.
type DashboardRepository struct {
	conn PgConnection
}

func NewDashboardRepo(cfg DBConfig) *DashboardRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dashboardRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dashboardRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DashboardRepository{
		conn: pool,
	}
}

func NewDashboardRepoWithConn(conn PgConnection) *DashboardRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dashboardRepo: " + err.Error())
	}
	return &DashboardRepository{
		conn: conn,
	}
}

func (dr *DashboardRepository) RefreshViews(ctx context.Context) error {
	_, err := dr.conn.Exec(ctx, `SELECT refresh_dashboard_views();`)
	if err != nil {
		return errors.New("refreshing dashboard views error: " + err.Error())
	}
	return nil
}

func (dr *DashboardRepository) TopLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	rows, err := dr.conn.Query(
		ctx,
		`SELECT rank, employee_id, profile_name, company, total_steps, total_charity_amount, last_updated
		 FROM leaderboard_view ORDER BY rank ASC LIMIT $1;`,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e entity.LeaderboardEntry
		err = rows.Scan(&e.Rank, &e.EmployeeID, &e.ProfileName, &e.Company, &e.TotalSteps, &e.TotalCharityAmount, &e.LastUpdated)
		if err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		result = append(result, e)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (dr *DashboardRepository) CompanyStats(ctx context.Context, company string) (*entity.CompanyStats, error) {
	row := dr.conn.QueryRow(
		ctx,
		`SELECT company, total_steps_all_employees, total_charity_amount, total_employees, last_updated
		 FROM company_stats_view WHERE company = $1;`,
		company,
	)
	var stats entity.CompanyStats
	err := row.Scan(&stats.Company, &stats.TotalStepsAllEmployees, &stats.TotalCharityAmount, &stats.TotalEmployees, &stats.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting company stats error: " + err.Error())
	}
	return &stats, nil
}

func (dr *DashboardRepository) UserRank(ctx context.Context, employeeID string) (*entity.UserRankInfo, error) {
	row := dr.conn.QueryRow(
		ctx,
		`SELECT rank, total_employees, total_steps, total_charity_amount FROM get_user_rank($1);`,
		employeeID,
	)
	var info entity.UserRankInfo
	err := row.Scan(&info.Rank, &info.TotalEmployees, &info.TotalSteps, &info.TotalCharityAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting user rank error: " + err.Error())
	}
	return &info, nil
}
