package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/booking"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/config"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/database"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/handler"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/queue"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/repository"
	"github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/router"
	queue_publisher "github.com/VishnuPrasanth-A/Bookmyshow-backend-guvi/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// nil when Redis is unreachable; cache and rate limiting degrade to no-ops
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable: response cache and rate limiting disabled")
	}

	movieRepo := repository.NewMovieRepo(db)
	bookingSvc := booking.NewService(movieRepo, queue_publisher.PublishBookingConfirmed)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer: stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterMovies(e,
		handler.NewMovieHandler(movieRepo),
		handler.NewBookingHandler(bookingSvc),
		rdb,
		config.LoadCacheConfig(),
		config.LoadRateLimitConfig(),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
