package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pointtrail/config"
	"pointtrail/internal/database"
	"pointtrail/internal/domain"
	"pointtrail/internal/events/kafka"
	"pointtrail/internal/repository"
	"pointtrail/internal/router"
)

func main() {
	cfg := config.Load()
	db, err := database.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	database.SeedAdmin(db)
	if err := repository.NewSettingRepository(db).SeedDefaults(domain.SettingDefaults); err != nil {
		log.Fatalf("seed settings: %v", err)
	}

	engine, recorder := router.Setup(cfg, db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var consumer *kafka.Consumer
	if len(cfg.Kafka.Brokers) > 0 {
		consumer = kafka.NewConsumer(cfg.Kafka, recorder)
		go consumer.Run(ctx)
		log.Printf("[kafka] consuming %s from %v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	cancel()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Printf("kafka close: %v", err)
		}
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	log.Println("server stopped")
}
