package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cloudybookclub/catalog-service/config"
	"github.com/cloudybookclub/catalog-service/internal/handler"
	"github.com/cloudybookclub/catalog-service/internal/preprod"
	"github.com/cloudybookclub/catalog-service/internal/repository"
	"github.com/cloudybookclub/catalog-service/internal/server"
	"github.com/cloudybookclub/catalog-service/internal/service"
	"github.com/cloudybookclub/catalog-service/internal/service/googlebooks"
	"github.com/cloudybookclub/catalog-service/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")

	ctx := context.Background()
	db, err := repository.NewMongoDB(ctx, &cfg.Mongo)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	// Seeding happens before the server listens: it truncates collections
	// and must not race live traffic.
	loader := preprod.NewDataLoader(repository.NewStore(db), cfg.Preprod, log)
	if err := loader.Run(ctx); err != nil {
		log.Fatal("load development data", zap.Error(err))
	}

	books := repository.NewBookRepository(db, log)
	users := repository.NewUserRepository(db, log)
	svc := service.NewService(books, users, log)
	googleSvc := googlebooks.NewService(log, cfg.Google)

	h := handler.New(svc, googleSvc, log)
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

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = db.Client().Disconnect(closeCtx); err != nil {
		log.Error("mongo disconnect", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
