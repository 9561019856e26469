package main

import (
	"log"
	"os"

	"github.com/NMalikk/StayOpsApp/app"
	"github.com/NMalikk/StayOpsApp/app/handler"
	"github.com/NMalikk/StayOpsApp/app/mq"
	"github.com/NMalikk/StayOpsApp/app/repositories"
	"github.com/NMalikk/StayOpsApp/app/usecases"
	"github.com/NMalikk/StayOpsApp/config"
	"github.com/NMalikk/StayOpsApp/database"
	"github.com/NMalikk/StayOpsApp/middleware"
	"github.com/NMalikk/StayOpsApp/server"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// @title StayOps Hotel API
// @version 1.0
// @description Hotel room reservation and reporting backend.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db := database.ConnectDB(cfg.Database.User, cfg.Database.Password, cfg.Database.DBName, cfg.Database.Host, cfg.Database.Port)
	defer db.Close()

	// Report cache (optional)
	var reportCache repositories.ReportCache = repositories.NopReportCache{}
	if cfg.Redis.Addr != "" {
		reportCache = repositories.NewRedisReportCache(redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr}))
	}

	// Audit event publisher (optional)
	var audit mq.Publisher = mq.NopPublisher{}
	if cfg.AMQP.URL != "" {
		queue := cfg.AMQP.Queue
		if queue == "" {
			queue = "stayops.audit"
		}
		publisher, err := mq.NewAMQPPublisher(cfg.AMQP.URL, queue)
		if err != nil {
			log.Printf("audit publisher disabled: %v", err)
		} else {
			audit = publisher
			defer publisher.Close()
		}
	}

	// Repositories
	guestRepo := repositories.NewGuestRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Usecases
	clock := usecases.RealClock{}
	staffUsecase := usecases.NewStaffUsecase(staffRepo, cfg.JWT.Secret)
	guestUsecase := usecases.NewGuestUsecase(guestRepo)
	roomUsecase := usecases.NewRoomUsecase(roomRepo)
	pricingUsecase := usecases.NewPricingUsecase(roomRepo, reportCache, audit)
	reservationUsecase := usecases.NewReservationUsecase(reservationRepo, roomRepo, guestRepo, reportCache, audit, clock)
	reportUsecase := usecases.NewReportUsecase(reportRepo, guestRepo, reportCache)

	// Handlers
	staffHandler := handler.NewStaffHandler(staffUsecase)
	guestHandler := handler.NewGuestHandler(guestUsecase)
	roomHandler := handler.NewRoomHandler(roomUsecase, pricingUsecase)
	reservationHandler := handler.NewReservationHandler(reservationUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase)

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		staffHandler,
		guestHandler,
		roomHandler,
		reservationHandler,
		reportHandler,
		middleware.JWTAuth(cfg),
	)

	log.Fatal(srv.Start())
}
