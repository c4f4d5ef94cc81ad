package main

import (
	"log"
	"os"
	"time"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/mailingservices"
	"github.com/civiceye/civiceye/server"
	"github.com/civiceye/civiceye/services"
	"github.com/rs/zerolog"
)

func newLogger(conf *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}
	if conf.Env == "prod" {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := newLogger(conf)

	var mailer mailingservices.Mailer
	if conf.MailgunApiKey != "" && conf.MgDomain != "" {
		mailgunClient := &mailingservices.Mailgun{}
		mailgunClient.Init(conf)
		mailer = mailgunClient
	} else {
		logger.Warn().Msg("mailgun not configured, acknowledgment mail disabled")
	}

	gormDB := db.GetDB(conf)

	userRepo := db.NewUserRepo(gormDB)
	propertyRepo := db.NewPropertyRepo(gormDB)
	reportRepo := db.NewReportRepo(gormDB)
	taxNoticeRepo := db.NewTaxNoticeRepo(gormDB)

	userService := services.NewUserService(userRepo, conf, logger)
	propertyService := services.NewPropertyService(propertyRepo, conf)
	reportService := services.NewReportService(reportRepo, propertyRepo, userRepo, mailer, conf, logger)
	taxNoticeService := services.NewTaxNoticeService(taxNoticeRepo, propertyRepo, conf, logger)
	statsService := services.NewStatsService(propertyRepo, reportRepo, userRepo, conf)
	pdfService, err := services.NewPDFService(conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("pdf service initialization failed")
	}

	s := &server.Server{
		Config: conf,
		Logger: logger,
		Mail:   mailer,

		UserRepository:      userRepo,
		PropertyRepository:  propertyRepo,
		ReportRepository:    reportRepo,
		TaxNoticeRepository: taxNoticeRepo,

		UserService:      userService,
		PropertyService:  propertyService,
		ReportService:    reportService,
		TaxNoticeService: taxNoticeService,
		StatsService:     statsService,
		PDFService:       pdfService,

		CurrentUser: server.HeaderUserResolver(userRepo),
	}
	s.Start()
}
