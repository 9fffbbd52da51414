package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/garaga28/Librario/config"
	"github.com/garaga28/Librario/internal/gateway"
	"github.com/garaga28/Librario/internal/handler"
	"github.com/garaga28/Librario/internal/notify"
	"github.com/garaga28/Librario/internal/repository"
	"github.com/garaga28/Librario/internal/server"
	"github.com/garaga28/Librario/internal/service"
	"github.com/garaga28/Librario/internal/sweeper"
	"github.com/garaga28/Librario/migrations"
	"github.com/garaga28/Librario/pkg/kafka"
	"github.com/garaga28/Librario/pkg/logger"
	"github.com/garaga28/Librario/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "librario")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	// Event emission is best-effort: a missing broker degrades to a
	// no-op notifier instead of taking the service down.
	notifier := notify.Nop()
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Error("kafka.NewProducer, events disabled", zap.Error(err))
	} else {
		notifier = notify.New(producer, log)
	}

	gw := gateway.New(cfg.Gateway, log)

	catalogSvc := service.NewCatalogService(repo, log)
	requestSvc := service.NewRequestService(repo, notifier, log)
	loanSvc := service.NewLoanService(repo, notifier, log)
	overdueSvc := service.NewOverdueService(repo, log)
	paymentSvc := service.NewPaymentService(repo, gw, notifier, log)

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	sw := sweeper.New(repo, notifier, cfg.Sweep.Interval, log)
	go func() {
		if err := sw.Run(sweepCtx); err != nil && err != context.Canceled {
			log.Error("sweeper run", zap.Error(err))
		}
	}()

	h := handler.New(catalogSvc, requestSvc, loanSvc, overdueSvc, paymentSvc, log)
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

	sweepCancel()
	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
