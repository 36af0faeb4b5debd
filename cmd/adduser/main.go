// Command adduser creates an application account with a bcrypt-hashed
// password, for bootstrapping a database that was not seeded.
package main

import (
	"flag"
	"log"

	"github.com/Victoire243/iSchool-sub000/app/config"
	"github.com/Victoire243/iSchool-sub000/app/database"
	"github.com/Victoire243/iSchool-sub000/app/models"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "path to the SQLite database file")
	username := flag.String("username", "", "login name (required)")
	password := flag.String("password", "", "plain-text password to hash (required)")
	fullName := flag.String("name", "", "display name")
	roleName := flag.String("role", "Admin", "role name; created if missing")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Both -username and -password are required")
	}

	store := database.NewStore(*dbPath)
	defer store.Close()

	db, err := store.DB()
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err := database.CreateSchema(db); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	roles, err := database.GetAllRoles(db, database.VisibilityActive)
	if err != nil {
		log.Fatal("Failed to list roles:", err)
	}
	var roleID int64
	for _, role := range roles {
		if role.Name == *roleName {
			roleID = role.ID
			break
		}
	}
	if roleID == 0 {
		roleID, err = database.CreateRole(db, &models.Role{Name: *roleName})
		if err != nil {
			log.Fatal("Failed to create role:", err)
		}
	}

	user := &models.User{
		Username: *username,
		Password: *password,
		FullName: *fullName,
		RoleID:   roleID,
	}
	if _, err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("User %s created with role %s (id %d)", user.Username, *roleName, user.ID)
}
