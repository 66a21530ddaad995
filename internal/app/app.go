package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/config"
	"github.com/renthub/rental-service/internal/events"
	"github.com/renthub/rental-service/internal/handler"
	"github.com/renthub/rental-service/internal/repository"
	"github.com/renthub/rental-service/internal/server"
	"github.com/renthub/rental-service/internal/service"
	"github.com/renthub/rental-service/migrations"
	"github.com/renthub/rental-service/pkg/kafka"
	"github.com/renthub/rental-service/pkg/logger"
	"github.com/renthub/rental-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "rental")

	var (
		repo repository.Repository
		db   *pgxpool.Pool
	)
	switch cfg.Storage.Backend {
	case "postgres":
		var err error
		db, err = postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			log.Fatal("db init", zap.Error(err))
		}
		repo = repository.NewPostgres(db, log)
	default:
		repo = repository.NewMemory(log)
	}

	opts := make([]service.Option, 0, 1)
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		opts = append(opts, service.WithEventLog(events.NewLog(producer, kafka.BookingEventsTopic)))
	}

	svc := service.NewService(repo, log, opts...)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if db != nil {
		db.Close()
	}
	log.Info("Graceful shutdown finished")
}
