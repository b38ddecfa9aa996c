package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/AbdelmonemElsawy/fyyur/internal/booking"
	"github.com/AbdelmonemElsawy/fyyur/internal/clock"
	"github.com/AbdelmonemElsawy/fyyur/internal/config"
	"github.com/AbdelmonemElsawy/fyyur/internal/database"
	"github.com/AbdelmonemElsawy/fyyur/internal/handler"
	"github.com/AbdelmonemElsawy/fyyur/internal/middleware"
	"github.com/AbdelmonemElsawy/fyyur/internal/queue"
	"github.com/AbdelmonemElsawy/fyyur/internal/repository"
	"github.com/AbdelmonemElsawy/fyyur/internal/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db, cfg.DBName); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; caching and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	svc := booking.NewService(
		repository.NewVenueRepo(db),
		repository.NewArtistRepo(db),
		repository.NewShowRepo(db),
		clock.NewSystem(),
	)

	invalidate := func() { middleware.InvalidateCache(rdb, cacheCfg.Prefix) }
	publish := func(c echo.Context, ev queue.ShowListedEvent) {
		_ = queue.PublishShowListed(c.Request().Context(), ev)
	}

	h := router.Handlers{
		Venues:  &handler.VenueHandler{Svc: svc, Invalidate: invalidate},
		Artists: &handler.ArtistHandler{Svc: svc, Invalidate: invalidate},
		Shows:   &handler.ShowHandler{Svc: svc, Invalidate: invalidate, Publish: publish},
		Auth: &handler.AuthHandler{
			Users:        repository.NewUserRepo(db),
			JWTSecret:    cfg.JWTSecret,
			AccessTTLMin: cfg.AccessTTLMin,
			BcryptCost:   cfg.BcryptCost,
		},
	}

	e := echo.New()
	router.RegisterRoutes(e, h, cfg.JWTSecret, rdb, cacheCfg, rlCfg)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
