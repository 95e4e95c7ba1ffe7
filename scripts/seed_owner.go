package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/auth"
)

func main() {
	fmt.Println("adding owner into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	ownerEmail := os.Getenv("OWNER_EMAIL")
	ownerPassword := os.Getenv("OWNER_PASSWORD")
	ownerName := os.Getenv("OWNER_NAME")
	if ownerName == "" {
		ownerName = "Resume Owner"
	}

	hash, err := auth.HashPassword(ownerPassword)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	var ownerID uuid.UUID
	err = pool.QueryRow(ctx, `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET password_hash = $4, name = $3
		RETURNING id
	`, uuid.New(), ownerEmail, ownerName, hash).Scan(&ownerID)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	data, err := json.Marshal(sampleResume(ownerEmail))
	if err != nil {
		log.Fatalf("cannot encode sample resume: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO resumes (id, owner_id, title, data, template, theme)
		VALUES ($1, $2, $3, $4, 'classic', '{}'::jsonb)
	`, uuid.New(), ownerID, "Sample Resume", data)
	if err != nil {
		log.Fatalf("cannot add sample resume: %v", err)
	}

	fmt.Printf("added or updated owner '%s' with a sample resume!\n", ownerEmail)
}

func sampleResume(email string) resume.Data {
	return resume.Data{
		PersonalInfo: resume.PersonalInfo{
			FirstName: "Sample",
			LastName:  "Owner",
			Email:     email,
			Summary:   resume.Str("Backend engineer who likes small, well-tested services."),
		},
		Experience: []resume.Experience{{
			ID:          uuid.NewString(),
			Title:       "Software Engineer",
			Company:     "Acme",
			StartDate:   "2021-03",
			Current:     true,
			Description: "- Built the billing API\n- Cut p99 latency in half",
		}},
		Education: []resume.Education{{
			ID:        uuid.NewString(),
			School:    "State University",
			Degree:    "BSc Computer Science",
			StartDate: "2016-09",
			EndDate:   resume.Str("2020-06"),
		}},
		Skills:    []string{"Go", "PostgreSQL", "Kafka"},
		Languages: []resume.Language{{ID: uuid.NewString(), Language: "English", Proficiency: "Native"}},
	}
}
