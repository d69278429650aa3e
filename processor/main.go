package main

import (
	"context"

	"fms-app/config"
	"fms-app/controllers/idgen"
	"fms-app/database"
	"fms-app/events"
	"fms-app/fms/cargo"
	"fms-app/migration"
	"fms-app/notify"
	"fms-app/repositories"
	"fms-app/services"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	config.LoadConfig()

	if err := idgen.Init(config.SnowflakeNode); err != nil {
		log.Fatalf("snowflake init failed: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	publisher := events.New(config.KafkaBroker, config.KafkaTopic)
	defer publisher.Close()

	mailer := notify.New(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.SMTPSender)
	calc := cargo.NewCalculator(config.AirVolumetricFactor, config.SeaVolumetricFactor)
	svc := services.NewBookingService(repositories.NewBookingRepository(db), calc, publisher, mailer)

	im := &importer{
		ledger:         repositories.NewImportLogRepository(db),
		bookings:       svc,
		mailer:         mailer,
		unprocessedDir: config.ImportUnprocessedDir,
		processedDir:   config.ImportProcessedDir,
		recipients:     config.ImportNotifyEmails,
	}

	log.Infow("batch import started", "dir", config.ImportUnprocessedDir)
	done, err := im.checkUnprocessedFiles(context.Background())
	if err != nil {
		log.Fatalf("scan unprocessed folder failed: %v", err)
	}
	log.Infow("batch import finished", "files", done)
}
