package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vborges/futura/internal/backup"
	"github.com/vborges/futura/internal/database"
	"github.com/vborges/futura/internal/email"
	"github.com/vborges/futura/internal/imagegen"
	"github.com/vborges/futura/internal/logging"
	"github.com/vborges/futura/internal/server"
)

func main() {
	logger := logging.Setup(os.Getenv("FUTURA_LOG_LEVEL"), os.Getenv("FUTURA_LOG_FORMAT"))

	port := os.Getenv("FUTURA_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("FUTURA_DB_PATH")
	if dbPath == "" {
		dbPath = "futura.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	fromEmail := os.Getenv("FUTURA_EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "Realidade Futura <onboarding@resend.dev>"
	}
	emailClient := email.NewClient(os.Getenv("FUTURA_RESEND_TOKEN"), fromEmail)
	imageClient := imagegen.NewClient(os.Getenv("FUTURA_GEMINI_API_KEY"))

	backupCfg := backup.Config{
		S3: backup.S3Config{
			Endpoint:  os.Getenv("FUTURA_BACKUP_S3_ENDPOINT"),
			Bucket:    os.Getenv("FUTURA_BACKUP_S3_BUCKET"),
			Region:    os.Getenv("FUTURA_BACKUP_S3_REGION"),
			AccessKey: os.Getenv("FUTURA_BACKUP_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("FUTURA_BACKUP_S3_SECRET_KEY"),
		},
		DBPath:     dbPath,
		Passphrase: os.Getenv("FUTURA_BACKUP_PASSPHRASE"),
	}

	srv := server.New(db, emailClient, imageClient, backupCfg, logger)

	// Settle the startup state before serving: a surviving session goes
	// straight to the editor.
	if state, err := srv.Controller().Resolve("/"); err != nil {
		log.Fatalf("failed to resolve session: %v", err)
	} else {
		logger.Info("session resolved", "state", string(state))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv.ReminderScheduler().Start(ctx)
	defer srv.ReminderScheduler().Stop()

	if srv.BackupManager().Enabled() {
		srv.BackupManager().Start(ctx)
		defer srv.BackupManager().Stop()
	}

	// Drop stale rate-limit entries periodically.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			}
		}
	}()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Realidade Futura running at http://localhost:%s\n", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
