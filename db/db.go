package db

import (
	"fmt"
	"log"
	"time"

	"github.com/civiceye/civiceye/config"
	"github.com/civiceye/civiceye/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
	if c.SeedDemoData {
		if err := SeedDemoData(g.DB); err != nil {
			log.Fatalf("unable to seed demo data: %v", err)
		}
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	gormConfig := &gorm.Config{}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Report{},
		&models.TaxNotice{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}
	return nil
}

func toStringPtr(s string) *string {
	return &s
}

func monthsAgo(n int) *time.Time {
	t := time.Now().AddDate(0, -n, 0)
	return &t
}

// SeedDemoData loads the sample reporters and properties used by the demo
// dashboard. Existing rows are left untouched.
func SeedDemoData(db *gorm.DB) error {
	users := []models.User{
		{Username: "junaid", Email: "junaid@example.com", Points: 2847},
		{Username: "sarah_martinez", Email: "sarah@example.com", Points: 2156},
		{Username: "emily_chen", Email: "emily@example.com", Points: 1923},
		{Username: "david_johnson", Email: "david@example.com", Points: 847},
	}
	for i := range users {
		if err := users[i].SetPassword("password"); err != nil {
			return err
		}
		if err := db.Where(models.User{Username: users[i].Username}).
			FirstOrCreate(&users[i]).Error; err != nil {
			return fmt.Errorf("seeding user %s: %v", users[i].Username, err)
		}
	}

	properties := []models.Property{
		{
			Address:            "1247 Oak Street, District 5",
			Latitude:           toStringPtr("40.7128"),
			Longitude:          toStringPtr("-74.0060"),
			PropertyType:       "Residential - Single Family",
			Status:             models.StatusInvestigating,
			VacancyScore:       87,
			ReportCount:        3,
			LastUtilityReading: monthsAgo(8),
			EstimatedTaxLoss:   toStringPtr("8450.00"),
		},
		{
			Address:            "892 Commercial Ave, Downtown",
			Latitude:           toStringPtr("40.7589"),
			Longitude:          toStringPtr("-73.9851"),
			PropertyType:       "Commercial",
			Status:             models.StatusConfirmedVacant,
			VacancyScore:       94,
			ReportCount:        7,
			LastUtilityReading: monthsAgo(14),
			EstimatedTaxLoss:   toStringPtr("23680.00"),
		},
		{
			Address:            "456 Residential Blvd, Midtown",
			Latitude:           toStringPtr("40.7614"),
			Longitude:          toStringPtr("-73.9776"),
			PropertyType:       "Residential - Multi-Family",
			Status:             models.StatusReported,
			VacancyScore:       72,
			ReportCount:        2,
			LastUtilityReading: monthsAgo(3),
			EstimatedTaxLoss:   toStringPtr("5230.00"),
		},
		{
			Address:            "789 Industrial Way, West Side",
			Latitude:           toStringPtr("40.7505"),
			Longitude:          toStringPtr("-74.0138"),
			PropertyType:       "Industrial",
			Status:             models.StatusPenaltyIssued,
			VacancyScore:       96,
			ReportCount:        12,
			LastUtilityReading: monthsAgo(18),
			EstimatedTaxLoss:   toStringPtr("45200.00"),
		},
	}
	for i := range properties {
		if err := db.Where(models.Property{Address: properties[i].Address}).
			FirstOrCreate(&properties[i]).Error; err != nil {
			return fmt.Errorf("seeding property %s: %v", properties[i].Address, err)
		}
	}

	return nil
}
