package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	errorvalues "github.com/steppulse/steppulse/internal/error_values"
	"github.com/steppulse/steppulse/internal/repository"
	"github.com/steppulse/steppulse/pkg/entity"
)

// LeaderboardLimit is how much of the ranking the dashboard shows.
const LeaderboardLimit = 20

type DashboardService struct {
	dashboardRepo repository.DashboardRepositoryI
	usersRepo     repository.UsersRepositoryI
}

func NewDashboardService(dashboardRepo repository.DashboardRepositoryI, usersRepo repository.UsersRepositoryI) *DashboardService {
	if dashboardRepo == nil || usersRepo == nil {
		log.Fatal("on dashboard service provided nil repos")
	}
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		usersRepo:     usersRepo,
	}
}

// Load refreshes the aggregate views first; if that fails the whole load
// fails with the underlying message and the caller keeps its last good
// data. The three reads after the refresh run as one joined group.
func (ds *DashboardService) Load(ctx context.Context, employeeID string) (*DashboardData, error) {
	if err := ds.dashboardRepo.RefreshViews(ctx); err != nil {
		return nil, errors.New("dashboard refresh error: " + err.Error())
	}

	user, err := ds.usersRepo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}

	data := &DashboardData{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := ds.dashboardRepo.TopLeaderboard(gctx, LeaderboardLimit)
		if err != nil {
			return err
		}
		data.Leaderboard = entries
		return nil
	})
	g.Go(func() error {
		stats, err := ds.dashboardRepo.CompanyStats(gctx, user.Company)
		if err != nil {
			return err
		}
		data.CompanyStats = stats
		return nil
	})
	g.Go(func() error {
		rank, err := ds.dashboardRepo.UserRank(gctx, employeeID)
		if err != nil {
			return err
		}
		data.UserRank = rank
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.New("dashboard fetch error: " + err.Error())
	}
	if data.Leaderboard == nil {
		data.Leaderboard = []entity.LeaderboardEntry{}
	}
	return data, nil
}
