package main

import (
	"context"
	"flag"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/totegamma/swcatalog/internal/config"
	"github.com/totegamma/swcatalog/internal/infra/database"
	"github.com/totegamma/swcatalog/internal/infra/repository"
	"github.com/totegamma/swcatalog/internal/present/rest"
	"github.com/totegamma/swcatalog/internal/service"
	"github.com/totegamma/swcatalog/internal/telemetry"
	"github.com/totegamma/swcatalog/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if conf.Server.EnableTrace {
		shutdown, err := telemetry.SetupTraceProvider(context.Background(), conf.Server.TraceEndpoint, "swcatalog")
		if err != nil {
			panic("failed to setup trace provider: " + err.Error())
		}
		defer shutdown(context.Background())
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, "", conf.Server.RedisDB)
	signal := service.NewSignalService(rdb)

	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	filmRepo := repository.NewFilmRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	userUC := usecase.NewUserUsecase(userRepo, signal)
	characterUC := usecase.NewCharacterUsecase(characterRepo, signal)
	planetUC := usecase.NewPlanetUsecase(planetRepo, signal)
	filmUC := usecase.NewFilmUsecase(filmRepo, signal)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, signal)

	handler := rest.NewHandler(userUC, characterUC, planetUC, filmUC, favoriteUC, signal)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("swcatalog"))
	}

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.ListenAddr))
}
