package main

import (
	"context"

	"fms-app/config"
	"fms-app/controllers/idgen"
	"fms-app/database"
	"fms-app/events"
	"fms-app/fms/cargo"
	"fms-app/middleware"
	"fms-app/migration"
	"fms-app/notify"
	"fms-app/repositories"
	"fms-app/routes"
	"fms-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	config.LoadConfig()

	if err := idgen.Init(config.SnowflakeNode); err != nil {
		log.Fatalf("Failed to init snowflake node: %v", err)
	}

	store, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open booking store: %v", err)
	}

	publisher := events.New(config.KafkaBroker, config.KafkaTopic)
	defer publisher.Close()

	mailer := notify.New(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.SMTPSender)
	calc := cargo.NewCalculator(config.AirVolumetricFactor, config.SeaVolumetricFactor)
	svc := services.NewBookingService(store, calc, publisher, mailer)

	if config.SeedDemo {
		if err := database.SeedDemoBookings(context.Background(), svc); err != nil {
			log.Errorw("demo seed failed", "error", err)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	middleware.Setup(app, config.RequestTimeout)
	config.SetupCORS(app)
	routes.Setup(app, svc)

	log.Fatal(app.Listen(":" + config.APP_PORT))
}

// openStore picks the booking store for DB_DRIVER. "memory" keeps everything in process.
func openStore() (services.BookingStore, error) {
	if config.DBDriver == "memory" {
		log.Warn("DB_DRIVER=memory, bookings are not persisted")
		return repositories.NewMemoryBookingRepository(), nil
	}

	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		return nil, err
	}
	db, err := database.Open()
	if err != nil {
		return nil, err
	}
	if err := migration.Migrate(db); err != nil {
		return nil, err
	}
	return repositories.NewBookingRepository(db), nil
}
