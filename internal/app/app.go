package app

import (
	"net/http"

	"barangay-records-go/internal/config"
	"barangay-records-go/internal/db"
	barangaydomain "barangay-records-go/internal/domain/barangay"
	blotterdomain "barangay-records-go/internal/domain/blotter"
	certificatedomain "barangay-records-go/internal/domain/certificate"
	dashboarddomain "barangay-records-go/internal/domain/dashboard"
	householddomain "barangay-records-go/internal/domain/household"
	residentdomain "barangay-records-go/internal/domain/resident"
	setupdomain "barangay-records-go/internal/domain/setup"
	userdomain "barangay-records-go/internal/domain/user"
	barangayrepo "barangay-records-go/internal/repository/postgres/barangay"
	blotterrepo "barangay-records-go/internal/repository/postgres/blotter"
	certificaterepo "barangay-records-go/internal/repository/postgres/certificate"
	dashboardrepo "barangay-records-go/internal/repository/postgres/dashboard"
	householdrepo "barangay-records-go/internal/repository/postgres/household"
	residentrepo "barangay-records-go/internal/repository/postgres/resident"
	userrepo "barangay-records-go/internal/repository/postgres/user"
	"barangay-records-go/internal/transport/httpserver"
	"barangay-records-go/internal/transport/httpserver/handler"
	"barangay-records-go/internal/transport/httpserver/middleware"
	"barangay-records-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load(log)

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		return nil, err
	}

	households := householddomain.NewService(householdrepo.NewPostgres(dbConn))
	residents := residentdomain.NewService(residentrepo.NewPostgres(dbConn), households)
	users := userdomain.NewService(userrepo.NewPostgres(dbConn), residents)
	blotters := blotterdomain.NewService(blotterrepo.NewPostgres(dbConn))
	certificates := certificatedomain.NewService(certificaterepo.NewPostgres(dbConn), residents)
	barangays := barangaydomain.NewService(barangayrepo.NewPostgres(dbConn))
	dashboard := dashboarddomain.NewService(dashboardrepo.NewPostgres(dbConn))
	setup := setupdomain.NewService(barangays, households, residents, users)

	auth := middleware.NewJWTAuth(cfg.Auth)
	handlers := handler.New(log, auth, barangays, households, residents, users, blotters, certificates, dashboard, setup)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, auth, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
