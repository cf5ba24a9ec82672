package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	migrate "github.com/rubenv/sql-migrate"
	_ "modernc.org/sqlite"

	"organizer/internal/rest"
	"organizer/pkg/logger"
	"organizer/pkg/notifier"
	"organizer/pkg/service"
	"organizer/pkg/store"
)

const version = "0.1.0"

var (
	address = lookupEnv("ADDRESS", ":8080")
	dbPath  = lookupEnv("DB_PATH", "organizer.db")
)

func main() {
	log := logger.NewLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	db, err := store.NewStore(ctx, log, dbPath)
	if err != nil {
		log.Panic(err)
	}
	if err = db.Migrate(migrate.Up); err != nil {
		log.Panic(err)
	}
	dummy := notifier.NewDummyNotifier(log)
	app := service.NewOrganizer(log, db, dummy)
	server := rest.NewServer(log, app, address, version)
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
		<-sigCh
		log.Info("Received signal, shutting down...")
		cancel()
	}()
	if err = server.Run(ctx); err != nil {
		log.Panic(err)
	}
	log.Info("Server stopped")
}

func lookupEnv(key, defaultValue string) string {
	result := os.Getenv(key)
	if result == "" {
		return defaultValue
	}
	return result
}
