package main

import (
	"context"
	"log"

	"brandscope-be/internal/bootstrap"
	"brandscope-be/internal/config"
	"brandscope-be/internal/server"
	"brandscope-be/internal/tracer"
)

func main() {
	// 1. Tracing
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Bootstrap dependencies (container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: Starting Notifier Service...")
		if err := container.NotifierService.Consume(context.Background()); err != nil {
			log.Printf("Background Notifier Error: %v", err)
		}
	}()

	// 5. Initialize and run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
