package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "tokenvest-backend/internal/adapter/http"
	idemp "tokenvest-backend/internal/adapter/middleware"
	"tokenvest-backend/internal/adapter/repository/mysql"
	"tokenvest-backend/internal/config"
	"tokenvest-backend/internal/infrastructure/cache"
	"tokenvest-backend/internal/infrastructure/db"
	notifyinfra "tokenvest-backend/internal/infrastructure/notify"
	"tokenvest-backend/internal/usecase/lifecycle"
	"tokenvest-backend/internal/usecase/request"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	schedule, err := cfg.Schedule()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	uow := mysql.NewGormUoW(gdb)
	notifier := notifyinfra.NewRedisNotifier(rdb, cfg.NotifyChannel)

	requestUC := request.NewUsecase(uow, schedule, notifier)
	lifecycleUC := lifecycle.NewUsecase(uow, notifier)

	h := httpadp.NewHandler()
	reqH := httpadp.NewRequestHandler(requestUC)
	lifeH := httpadp.NewLifecycleHandler(lifecycleUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()

	e.GET("/health", h.Health)

	// investor surface
	e.POST("/requests", reqH.CreateRequest)
	e.GET("/requests", reqH.ListRequests)
	e.GET("/requests/export", reqH.ExportRequests)
	e.GET("/requests/:request_id", reqH.GetRequest)
	e.POST("/requests/:request_id/cancel", reqH.CancelRequest)

	// admin surface: transitions are idempotent per (actor, request id)
	admin := e.Group("/admin", idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	admin.POST("/requests/:request_id/approve", lifeH.Approve)
	admin.POST("/requests/:request_id/deny", lifeH.Deny)
	admin.POST("/requests/:request_id/processing", lifeH.MarkProcessing)
	admin.POST("/requests/:request_id/complete", lifeH.MarkCompleted)
	admin.POST("/requests/bulk/approve", lifeH.BulkApprove)
	admin.POST("/requests/bulk/deny", lifeH.BulkDeny)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
