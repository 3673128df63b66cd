package main

import (
	"context"
	"time"

	"github.com/paverbrasil/paveradmin/internal"
	"github.com/paverbrasil/paveradmin/internal/handler"
	"github.com/paverbrasil/paveradmin/internal/security"
	"github.com/paverbrasil/paveradmin/internal/service"
	"github.com/paverbrasil/paveradmin/internal/settings"
	"github.com/paverbrasil/paveradmin/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "modernc.org/sqlite"
)

func main() {
	internal.InitializeConfiguration()
	settings.ReadDotenv(internal.DotEnvPath)
	settings.Settings = settings.NewSettings()
	hashKey, blockKey, tokenSecret := security.NewKeys()
	rdb := store.InitDatabase(true)
	defer rdb.Close()
	rwdb := store.InitDatabase(false)
	defer rwdb.Close()
	store.RunMigrations(rwdb, internal.MigrationsDir)

	scheduler := service.NewScheduler()
	defer scheduler.Shutdown()

	cookieSvc := service.NewCookieService(hashKey, blockKey)
	tokens := security.NewTokenIssuer(
		tokenSecret,
		time.Duration(internal.Config.SessionExpiresHours)*time.Hour,
	)
	userSvc := service.NewUserService(store.NewUserSQLiteStore(rdb, rwdb))
	clientSvc := service.NewClientService(store.NewClientSQLiteStore(rdb, rwdb))
	productSvc := service.NewProductService(store.NewProductSQLiteStore(rdb, rwdb))
	quotationSvc := service.NewQuotationService(store.NewQuotationSQLiteStore(rdb, rwdb))
	noteSvc := service.NewNoteService(store.NewNoteSQLiteStore(rdb, rwdb))
	settingsSvc := service.NewSettingsService(store.NewSettingSQLiteStore(rdb, rwdb))

	userSvc.EnsureAdmin(context.Background())
	service.ScheduleAdminBootstrap(scheduler, userSvc)
	scheduler.Start()

	e := setupEcho()
	g := e.Group("", handler.SessionMiddleware(userSvc, cookieSvc, tokens))
	handler.SetupAuthRoutes(g, userSvc, cookieSvc, tokens)
	handler.SetupClientRoutes(g, clientSvc)
	handler.SetupProductRoutes(g, productSvc)
	handler.SetupQuotationRoutes(g, quotationSvc)
	handler.SetupNoteRoutes(g, noteSvc)
	handler.SetupSettingsRoutes(g, settingsSvc)

	internal.GracefulShutdown(e, settings.Settings.Port)
}

func setupEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(
		middleware.CORSWithConfig(internal.GetCORSConfig()),
		middleware.RateLimiterWithConfig(internal.GetRateLimiterConfig()),
	)
	return e
}
