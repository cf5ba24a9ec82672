package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	_ "modernc.org/sqlite"

	"organizer/internal/rest"
	"organizer/internal/telegram"
	"organizer/pkg/logger"
	"organizer/pkg/service"
	"organizer/pkg/store"
	"organizer/pkg/worker"
)

const version = "0.1.0"

var (
	address    = lookupEnv("ADDRESS", ":8080")
	dbPath     = lookupEnv("DB_PATH", "organizer.db")
	tgToken    = os.Getenv("TG_TOKEN")
	tgChatID   = lookupEnv("TG_CHAT_ID", "0")
	checkEvery = lookupEnv("REMINDER_CHECK_MINUTES", "5")
	reviewHour = lookupEnv("DAILY_REVIEW_HOUR", "8")
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
	bot, err := telegram.NewBot(tgToken)
	if err != nil {
		log.Panic(err)
	}
	chatID, err := strconv.ParseInt(tgChatID, 10, 64)
	if err != nil {
		log.Panicf("bad TG_CHAT_ID: %v", err)
	}
	tgNotifier := telegram.NewNotifier(log, bot, chatID)
	app := service.NewOrganizer(log, db, tgNotifier)
	tg, err := telegram.New(log, bot, app)
	if err != nil {
		log.Panic(err)
	}
	server := rest.NewServer(log, app, address, version)
	minutes, err := strconv.Atoi(checkEvery)
	if err != nil {
		log.Panicf("bad REMINDER_CHECK_MINUTES: %v", err)
	}
	hour, err := strconv.Atoi(reviewHour)
	if err != nil {
		log.Panicf("bad DAILY_REVIEW_HOUR: %v", err)
	}
	reminders := worker.New(log, db, app, tgNotifier, time.Duration(minutes)*time.Minute, hour)
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
		<-sigCh
		log.Info("Received signal, shutting down...")
		cancel()
	}()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tg.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := reminders.Run(ctx); err != nil {
			log.Errorf("worker stopped: %v", err)
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.Run(ctx); err != nil {
			log.Panic(err)
		}
	}()
	wg.Wait()
	log.Info("Server stopped")
}

func lookupEnv(key, defaultValue string) string {
	result := os.Getenv(key)
	if result == "" {
		return defaultValue
	}
	return result
}
