package main

import (
	"context"
	"log"

	"college-compass-be/internal/bootstrap"
	"college-compass-be/internal/config"
	"college-compass-be/internal/server"
	"college-compass-be/internal/tracer"
	"college-compass-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Activity recording runs off the in-process event bus.
	go func() {
		if err := container.ActivityConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background activity consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
