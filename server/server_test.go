package server

import (
	"testing"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/db"
	"github.com/civiceye/civiceye/models"
	"github.com/civiceye/civiceye/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires a full server against an in-memory database, mirroring
// main.go without Mailgun.
func newTestServer(t *testing.T) (*Server, *gin.Engine, *db.GormDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Report{},
		&models.TaxNotice{},
	))
	gormDB := &db.GormDB{DB: gdb}

	conf := &config.Config{Port: 0, Env: "test", PDFDir: t.TempDir()}
	log := zerolog.Nop()

	userRepo := db.NewUserRepo(gormDB)
	propertyRepo := db.NewPropertyRepo(gormDB)
	reportRepo := db.NewReportRepo(gormDB)
	taxNoticeRepo := db.NewTaxNoticeRepo(gormDB)

	pdfService, err := services.NewPDFService(conf)
	require.NoError(t, err)

	s := &Server{
		Config: conf,
		Logger: log,

		UserRepository:      userRepo,
		PropertyRepository:  propertyRepo,
		ReportRepository:    reportRepo,
		TaxNoticeRepository: taxNoticeRepo,

		UserService:      services.NewUserService(userRepo, conf, log),
		PropertyService:  services.NewPropertyService(propertyRepo, conf),
		ReportService:    services.NewReportService(reportRepo, propertyRepo, userRepo, nil, conf, log),
		TaxNoticeService: services.NewTaxNoticeService(taxNoticeRepo, propertyRepo, conf, log),
		StatsService:     services.NewStatsService(propertyRepo, reportRepo, userRepo, conf),
		PDFService:       pdfService,

		CurrentUser: HeaderUserResolver(userRepo),
		Hub:         NewHub(log),
	}
	go s.Hub.Run()

	return s, s.setupRouter(), gormDB
}
