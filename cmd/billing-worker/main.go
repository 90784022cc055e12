package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/soilsync/vegbox-api/client/payments"
	"github.com/soilsync/vegbox-api/db"
	"github.com/soilsync/vegbox-api/helpers"
	"github.com/soilsync/vegbox-api/logger"
	"github.com/soilsync/vegbox-api/services"
)

var (
	retrySchedule = flag.String("retry-schedule", "*/15 * * * *", "Cron schedule for payment retry processing")
	graceSchedule = flag.String("grace-schedule", "0 * * * *", "Cron schedule for grace period expiry checks")
	lockSchedule  = flag.String("lock-schedule", "0 20 * * *", "Cron schedule for locking selections past cutoff")
	auditSchedule = flag.String("audit-schedule", "30 2 * * *", "Cron schedule for allocation counter audits")
	lockLeadDays  = flag.Int("lock-lead-days", 2, "Days before delivery at which selections lock")
	runOnce       = flag.Bool("run-once", false, "Run all jobs once and exit")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	defer func() {
		_ = logger.Log.Sync()
	}()

	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Log.Fatal("DATABASE_URL is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Log.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 15 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Log.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	// The database may still be coming up when the worker starts.
	pingBackoff := backoff.NewExponentialBackOff()
	pingBackoff.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(func() error { return pool.Ping(ctx) }, backoff.WithContext(pingBackoff, ctx)); err != nil {
		logger.Log.Fatal("Unable to reach database", zap.Error(err))
	}

	gatewayURL := os.Getenv("PAYMENT_GATEWAY_URL")
	gatewayKey := os.Getenv("PAYMENT_GATEWAY_API_KEY")
	if gatewayURL == "" || gatewayKey == "" {
		logger.Log.Fatal("PAYMENT_GATEWAY_URL and PAYMENT_GATEWAY_API_KEY are required")
	}

	queries := db.New(pool)
	retryService := services.NewBillingRetryService(queries, logger.Log, services.DefaultBillingRetryConfig())
	ledger := services.NewAllocationLedger(logger.Log)
	processor := payments.NewClient(payments.Config{BaseURL: gatewayURL, APIKey: gatewayKey}, logger.Log)
	worker := services.NewBillingWorker(queries, pool, retryService, processor, ledger, logger.Log)

	runRetries := func() {
		if _, err := worker.ProcessDueRetries(ctx); err != nil {
			logger.Log.Error("payment retry run failed", zap.Error(err))
		}
	}
	runGraceExpiry := func() {
		suspended, err := worker.SuspendLapsedSubscriptions(ctx)
		if err != nil {
			logger.Log.Error("grace period expiry run failed", zap.Error(err))
			return
		}
		if suspended > 0 {
			logger.Log.Info("suspended subscriptions with lapsed grace period", zap.Int("count", suspended))
		}
	}
	runLocking := func() {
		cutoff := time.Now().UTC().AddDate(0, 0, *lockLeadDays)
		if _, err := worker.LockSelectionsPastCutoff(ctx, cutoff); err != nil {
			logger.Log.Error("selection locking run failed", zap.Error(err))
		}
	}
	runAudit := func() {
		weekStart := helpers.StartOfWeek(time.Now().UTC())
		audited, err := worker.AuditAllocations(ctx, weekStart)
		if err != nil {
			logger.Log.Error("allocation audit run failed", zap.Error(err))
			return
		}
		logger.Log.Info("allocation audit completed", zap.Int("configurations", audited))
	}

	if *runOnce {
		runRetries()
		runGraceExpiry()
		runLocking()
		runAudit()
		return
	}

	c := cron.New()
	for _, job := range []struct {
		name     string
		schedule string
		fn       func()
	}{
		{"payment-retries", *retrySchedule, runRetries},
		{"grace-expiry", *graceSchedule, runGraceExpiry},
		{"selection-locking", *lockSchedule, runLocking},
		{"allocation-audit", *auditSchedule, runAudit},
	} {
		if _, err := c.AddFunc(job.schedule, job.fn); err != nil {
			logger.Log.Fatal("Failed to schedule job",
				zap.String("job", job.name),
				zap.String("schedule", job.schedule),
				zap.Error(err))
		}
		logger.Log.Info("scheduled job", zap.String("job", job.name), zap.String("schedule", job.schedule))
	}

	c.Start()
	logger.Log.Info("billing worker started", zap.String("stage", stage))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Log.Info("shutting down billing worker")
	<-c.Stop().Done()
}
