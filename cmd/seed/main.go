// Command seed regenerates the development database from the deterministic
// dataset generator, replacing any prior contents.
package main

import (
	"flag"
	"log"

	"github.com/Victoire243/iSchool-sub000/app/config"
	"github.com/Victoire243/iSchool-sub000/app/database"
	"github.com/Victoire243/iSchool-sub000/app/seed"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "path to the SQLite database file")
	seedValue := flag.Int64("seed", cfg.SeedValue, "generator seed; same seed, same dataset")
	flag.Parse()

	store := database.NewStore(*dbPath)
	defer store.Close()

	db, err := store.DB()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	ds := seed.Generate(*seedValue)
	if err := seed.Load(db, ds); err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	year, err := database.GetActiveSchoolYear(db)
	if err != nil {
		log.Fatal("Failed to read back active school year:", err)
	}
	log.Printf("Seeded %s with seed %d (active school year %s)", *dbPath, *seedValue, year.Name)
}
