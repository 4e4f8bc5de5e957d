package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/zaban-academy/internal/audit"
	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/config"
	dbpkg "github.com/BruksfildServices01/zaban-academy/internal/db"
	contentDomain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/zaban-academy/internal/infra/repository"
	"github.com/BruksfildServices01/zaban-academy/internal/infra/storage"
	"github.com/BruksfildServices01/zaban-academy/internal/logging"
	"github.com/BruksfildServices01/zaban-academy/internal/notify"
	"github.com/BruksfildServices01/zaban-academy/internal/observability"
	"github.com/BruksfildServices01/zaban-academy/internal/routes"
	"github.com/BruksfildServices01/zaban-academy/internal/timezone"
	ucUser "github.com/BruksfildServices01/zaban-academy/internal/usecase/user"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Closer()
	zap.ReplaceGlobals(lg.Base)

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		lg.Base.Warn("sentry disabled", zap.Error(err))
	}
	defer flush()

	httperr.ExposeDetail(!cfg.IsProd())
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(ctx, cfg)
	if err != nil {
		lg.Base.Fatal("failed to connect to db", zap.Error(err))
	}

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	contentRepo := infraRepo.NewContentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	notifier, err := buildNotifier(cfg, lg.Base)
	if err != nil {
		lg.Base.Fatal("failed to init notifier", zap.Error(err))
	}
	notifyDispatcher := notify.NewDispatcher(notifier, 100)

	var store contentDomain.ObjectStore
	if cfg.StorageEnabled() {
		store = storage.NewS3Store(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			URLTTL:    cfg.SignedURLTTL,
		})
	} else {
		lg.Base.Warn("object storage not configured, media links disabled")
	}

	var contentCache contentDomain.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			lg.Base.Warn("redis unreachable, caching disabled", zap.Error(err))
		} else {
			contentCache = cache.NewContentCache(rdb, cfg.CacheListTTL, cfg.CacheMetaTTL)
		}
		cancel()
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// ======================================================
	// BOOTSTRAP ADMINS
	// ======================================================
	upgraded, err := ucUser.NewPromoteKnownAdmins(userRepo, cfg.AdminPhones, auditDispatcher).Execute(ctx, nil)
	if err != nil {
		lg.Base.Error("admin bootstrap failed", zap.Error(err))
	} else if len(upgraded) > 0 {
		lg.Base.Info("admins bootstrapped", zap.Strings("usernames", upgraded))
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Repos: routes.Repos{
			Bookings: bookingRepo,
			Payments: paymentRepo,
			Contents: contentRepo,
			Users:    userRepo,
		},
		Log:            lg.Base,
		JWT:            jwtManager,
		Hasher:         auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost),
		Location:       loc,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		OperatorPhone:  cfg.OperatorPhone,
		AdminPhones:    cfg.AdminPhones,
		Notifier:       notifyDispatcher,
		Audit:          auditDispatcher,
		Store:          store,
		Cache:          contentCache,
		NewKey:         storage.NewUploadKey,
		DB:             db,
		Ping:           func(ctx context.Context) error { return dbpkg.Ping(ctx, db) },
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Base.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Base.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Base.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Base.Error("server forced to shutdown", zap.Error(err))
	}

	notifyDispatcher.Close()
	auditDispatcher.Close()
	closeDB(db, lg.Base)

	lg.Base.Info("server exited gracefully")
}

func buildNotifier(cfg *config.Config, log *zap.Logger) (notify.Notifier, error) {
	switch cfg.Notifier {
	case "sms":
		return notify.NewSMSNotifier(cfg.SMSAPIURL, cfg.SMSAPIKey, cfg.SMSSender), nil
	case "telegram":
		return notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChat)
	default:
		return notify.NewLogNotifier(log), nil
	}
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("db close failed", zap.Error(err))
	}
}
