package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"goatgrids/internal/client"
	"goatgrids/internal/config"
	"goatgrids/internal/repository"
	"goatgrids/internal/server"
	"goatgrids/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if err := repository.EnsureDataFiles(cfg.DataPath); err != nil {
		log.Fatal("init data files: ", err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.UploadsPath, "travels"), 0755); err != nil {
		log.Fatal("init uploads dir: ", err)
	}

	userRepo := repository.NewUserRepository(cfg.DataPath)
	memberRepo := repository.NewMemberRepository(cfg.DataPath)
	productRepo := repository.NewProductRepository(cfg.DataPath)
	galleryRepo := repository.NewGalleryRepository(cfg.DataPath)
	orderRepo := repository.NewOrderRepository(cfg.DataPath)
	travelRepo := repository.NewTravelPostRepository(cfg.DataPath)

	yocoClient := client.NewYocoClient(&cfg.Yoco)
	courierClient := client.NewCourierClient(&cfg.Courier)

	authService := service.NewAuthService(userRepo, cfg.Auth.StaffSecret)
	if err := authService.EnsureDefaultAdmin(); err != nil {
		log.Fatal("init admin user: ", err)
	}

	srv := server.NewServer(cfg, server.Services{
		Auth:     authService,
		Member:   service.NewMemberService(memberRepo, cfg.Auth.MemberSecret),
		Catalog:  service.NewCatalogService(productRepo, galleryRepo),
		Order:    service.NewOrderService(orderRepo, yocoClient, cfg.Yoco.SecretKey),
		Shipping: service.NewShippingService(courierClient, cfg.Courier.APIKey),
		Travel:   service.NewTravelService(travelRepo, memberRepo),
	})

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: ", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error: ", err)
	}
}
