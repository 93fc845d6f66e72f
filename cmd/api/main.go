// @title StepPulse API
// @description API for the StepPulse workplace step-tracking & charity program
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/steppulse/steppulse/internal/api"
	"github.com/steppulse/steppulse/internal/repository"
	"github.com/steppulse/steppulse/internal/scheduler"
	"github.com/steppulse/steppulse/internal/service"
	"github.com/steppulse/steppulse/internal/syncgate"
	"github.com/steppulse/steppulse/pkg/cleanup"
	"github.com/steppulse/steppulse/pkg/config"
	jwtservice "github.com/steppulse/steppulse/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	gate := syncgate.New(&syncgate.RedisCfg{
		Address:  cfg.GetString("REDIS_ADDRESS"),
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       cfg.GetInt("REDIS_DB", 0),
	})

	usersRepo := repository.NewUsersRepo(&dbCfg)
	dashboardRepo := repository.NewDashboardRepo(&dbCfg)

	registrationService := service.NewRegistrationService(usersRepo)
	syncService := service.NewSyncService(
		repository.NewStepsRepo(&dbCfg),
		repository.NewSettingsRepo(&dbCfg),
		gate,
	)
	streakService := service.NewStreakService(
		repository.NewStreaksRepo(&dbCfg),
		repository.NewMilestonesRepo(&dbCfg),
	)
	dashboardService := service.NewDashboardService(dashboardRepo, usersRepo)

	viewRefresher := scheduler.New(dashboardRepo)
	viewRefresher.Start()

	serv := api.New(&api.ServicesList{
		RegistrationService: registrationService,
		SyncService:         syncService,
		StreakService:       streakService,
		DashboardService:    dashboardService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
