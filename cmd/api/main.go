package main

import (
	"context"
	"os"

	"upcoming-elections/internal/client"
	"upcoming-elections/internal/config"
	"upcoming-elections/internal/handler"
	"upcoming-elections/internal/repository"
	"upcoming-elections/internal/service"

	"github.com/carlmjohnson/gateway"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// @title       Upcoming Elections API
// @version     1.0
// @description Looks up upcoming elections for a postal address via its OCD division IDs.
// @BasePath    /
func main() {
	gotenv.Load()

	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)

	// Region storage is optional
	var regionRepo service.RegionRepository
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		regionRepo = repository.NewRepository(conn)
	} else {
		log.Info().Msg("no DB_SOURCE configured, using built-in regions")
	}

	// Initialize layers
	electionsAPI := client.New(config.ElectionsAPIURL, client.WithTimeout(config.ElectionsAPITimeout))

	electionService := service.NewElectionService(electionsAPI)
	regionService := service.NewRegionService(regionRepo)

	searchHandler := handler.NewSearchHandler(electionService, regionService)
	apiHandler := handler.NewAPIHandler(electionService, regionService)

	gin.SetMode(config.GinMode)

	r, err := newRouter(searchHandler, apiHandler)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load templates")
	}

	if config.Lambda {
		log.Info().Msg("starting lambda handler")
		err = gateway.ListenAndServe("", r)
	} else {
		log.Info().Str("address", config.ServerAddress).Msg("starting server")
		err = r.Run(config.ServerAddress)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(config config.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Warn().Str("level", config.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
