package main

import (
	"log"

	"github.com/Victoire243/iSchool-sub000/app/config"
	"github.com/Victoire243/iSchool-sub000/app/database"
	"github.com/Victoire243/iSchool-sub000/app/reports"
	"github.com/Victoire243/iSchool-sub000/app/seed"
)

func main() {
	cfg := config.Load()

	store := database.NewStore(cfg.DBPath)
	defer store.Close()

	db, err := store.DB()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	if err := database.CreateSchema(db); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	if cfg.SeedOnStart {
		if err := seed.Load(db, seed.Generate(cfg.SeedValue)); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
	}

	summary, err := reports.GetDashboardSummary(db)
	if err != nil {
		log.Fatal("Failed to load dashboard summary:", err)
	}
	log.Printf("School year %s: %d students, %d payments, cash balance %s",
		summary.ActiveSchoolYear, summary.TotalStudents, summary.TotalPayments,
		summary.CashBalance.String())
}
