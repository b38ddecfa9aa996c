// Package router registers the HTTP routes of the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/AbdelmonemElsawy/fyyur/internal/config"
	"github.com/AbdelmonemElsawy/fyyur/internal/handler"
	"github.com/AbdelmonemElsawy/fyyur/internal/middleware"
)

// Handlers bundles the handler sets the router wires up.
type Handlers struct {
	Venues  *handler.VenueHandler
	Artists *handler.ArtistHandler
	Shows   *handler.ShowHandler
	Auth    *handler.AuthHandler
}

// RegisterRoutes registers every route.  Public GET listings go through
// the redis response cache; the whole surface is rate limited; mutations
// require a bearer token.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client,
	cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {

	e.Use(middleware.RateLimit(rlCfg, rdb))
	cached := middleware.ResponseCache(cacheCfg, rdb)

	e.GET("/healthz", handler.Health)

	e.POST("/auth/register", h.Auth.Register)
	e.POST("/auth/login", h.Auth.Login)

	// Public browse and search.
	e.GET("/venues", h.Venues.List, cached)
	e.POST("/venues/search", h.Venues.Search)
	e.GET("/venues/:id", h.Venues.Detail, cached)
	e.GET("/artists", h.Artists.List, cached)
	e.POST("/artists/search", h.Artists.Search)
	e.GET("/artists/:id", h.Artists.Detail, cached)
	e.GET("/shows", h.Shows.List, cached)

	// Mutations require authentication.
	auth := middleware.JWTAuth(jwtSecret)
	e.POST("/venues/create", h.Venues.Create, auth)
	e.POST("/venues/:id/edit", h.Venues.Update, auth)
	e.DELETE("/venues/:id", h.Venues.Delete, auth)
	e.POST("/artists/create", h.Artists.Create, auth)
	e.POST("/artists/:id/edit", h.Artists.Update, auth)
	e.POST("/shows/create", h.Shows.Create, auth)
}
