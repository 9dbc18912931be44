package main

import (
	"flag"
	"log"

	"acadia-schools/app/config"
	"acadia-schools/app/database"
	"acadia-schools/app/models"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	role := flag.String("role", models.RoleTeacher, "role: admin or teacher")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" {
		flag.Usage()
		log.Fatal("email, password and first-name are required")
	}
	if *role != models.RoleAdmin && *role != models.RoleTeacher {
		log.Fatalf("unknown role %q", *role)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		IsActive:  true,
	}
	if err := database.CreateStaffUser(db, user, *role); err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	log.Printf("Created %s user %s (%s)", *role, user.Email, user.ID)
}
