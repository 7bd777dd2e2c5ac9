package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gestor/internal/config"
	"gestor/internal/db"
	httpx "gestor/internal/http"
	"gestor/internal/jobs"
	"gestor/internal/remote"

	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		log.Fatal(err)
	}

	syncer := remote.NewSyncer(gdb, cfg.Calendar)
	r := httpx.NewRouter(cfg, gdb, syncer)

	ctx, cancel := context.WithCancel(context.Background())

	// reminder worker
	jobsRepo := &jobs.Repo{DB: gdb}
	worker := &jobs.Worker{ID: "worker-1", Repo: jobsRepo, DB: gdb}
	go worker.Run(ctx)

	// remote feed refresh: once at boot, then on the cron schedule
	go func() {
		if err := syncer.Refresh(ctx); err != nil {
			log.Printf("initial calendar sync failed: %v\n", err)
		}
	}()
	c := cron.New()
	if _, err := c.AddFunc(cfg.SyncCron, func() {
		if err := syncer.Refresh(ctx); err != nil {
			log.Printf("calendar sync failed: %v\n", err)
		}
	}); err != nil {
		log.Fatal(err)
	}
	c.Start()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s\n", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	cancel()
	<-c.Stop().Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
