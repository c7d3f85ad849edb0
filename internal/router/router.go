// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/config"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/handler"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/middleware"
)

// RegisterRoutes registers routes that need no dependencies. Currently that
// is only the health check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterMovies registers the movie API under /movie. The catalog reads sit
// behind the Redis response cache; the booking endpoint sits behind the rate
// limiter. rdb may be nil, in which case both middlewares are pass-through.
func RegisterMovies(e *echo.Echo, mh *handler.MovieHandler, bh *handler.BookingHandler, rdb *redis.Client, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	limit := middleware.NewTokenBucket(rlCfg, rdb)

	g := e.Group("/movie")
	g.GET("/get-movies", mh.GetMovies, cache)
	g.POST("/book-movie", bh.BookMovie, limit)
	// Registered last: echo prefers the literal routes above over the param match.
	g.GET("/:id", mh.GetMovie, cache)
}
