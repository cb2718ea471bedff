package main

import (
	"context"
	"log"
	"time"

	"civicportal/internal/config"
	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// Seeds sample content into MySQL so a fresh deployment has something to
// show. Entities that already contain rows are left alone, so the script is
// safe to run repeatedly.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN must be set: seeding only makes sense against persistent storage")
	}

	gormDB, err := repository.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := repository.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	leaders := repository.NewMySQLLeaderRepository(gormDB)
	news := repository.NewMySQLNewsRepository(gormDB)
	projects := repository.NewMySQLProjectRepository(gormDB)
	events := repository.NewMySQLEventRepository(gormDB)

	total := 0
	total += seedLeaders(ctx, leaders)
	total += seedNews(ctx, news)
	total += seedProjects(ctx, projects)
	total += seedEvents(ctx, events)

	log.Printf("Seed completed: %d records created", total)
}

func seedLeaders(ctx context.Context, repo repository.LeaderRepository) int {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list leaders: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Leaders already present (%d), skipping", len(existing))
		return 0
	}

	samples := []model.LeaderInput{
		{
			FullName:  "Hon. Sarah Mwangi",
			Position:  "Member of Parliament",
			Email:     "mp@constituency.example",
			Location:  "Constituency Office, Main Street",
			Biography: "Serving her second term with a focus on education and rural infrastructure.",
		},
		{
			FullName:  "James Otieno",
			Position:  "Constituency Development Fund Chairman",
			Email:     "cdf@constituency.example",
			Biography: "Oversees allocation of development funds to ward level projects.",
		},
		{
			FullName: "Grace Wanjiru",
			Position: "Youth Affairs Coordinator",
			Location: "Community Hall Annex",
		},
	}

	created := 0
	for _, input := range samples {
		if _, err := repo.Create(ctx, &input); err != nil {
			log.Fatalf("Failed to create leader %q: %v", input.FullName, err)
		}
		created++
	}
	log.Printf("Created %d leaders", created)
	return created
}

func seedNews(ctx context.Context, repo repository.NewsRepository) int {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list news: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("News already present (%d), skipping", len(existing))
		return 0
	}

	samples := []model.NewsInput{
		{
			Title:    "Bursary Applications Now Open",
			Summary:  "Secondary and tertiary students can apply for the annual education bursary until the end of next month.",
			Content:  "The constituency education bursary fund is now accepting applications. Forms are available at the constituency office and all ward offices. Completed forms must be returned with supporting documents before the deadline.",
			Category: "Education",
		},
		{
			Title:    "Water Project Reaches Halfway Mark",
			Summary:  "The borehole and piping works serving the northern wards are fifty percent complete.",
			Content:  "Contractors report that drilling has finished at all three sites and pipe laying has begun. The project remains on schedule for commissioning later this year.",
			Category: "Development",
		},
	}

	created := 0
	for _, input := range samples {
		if _, err := repo.Create(ctx, &input, 0); err != nil {
			log.Fatalf("Failed to create news %q: %v", input.Title, err)
		}
		created++
	}
	log.Printf("Created %d news articles", created)
	return created
}

func seedProjects(ctx context.Context, repo repository.ProjectRepository) int {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list projects: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Projects already present (%d), skipping", len(existing))
		return 0
	}

	now := time.Now()
	target := now.AddDate(0, 8, 0)
	samples := []model.ProjectInput{
		{
			Title:                "Northern Wards Water Supply",
			Description:          "Borehole drilling and distribution piping serving four villages.",
			Status:               "In Progress",
			StartDate:            now.AddDate(0, -6, 0),
			TargetDate:           &target,
			CompletionPercentage: 50,
		},
		{
			Title:                "Market Access Road Grading",
			Description:          "Grading and murram surfacing of the feeder road to the weekly market.",
			Status:               "Planned",
			StartDate:            now.AddDate(0, 1, 0),
			CompletionPercentage: 0,
		},
	}

	created := 0
	for _, input := range samples {
		if _, err := repo.Create(ctx, &input, 0); err != nil {
			log.Fatalf("Failed to create project %q: %v", input.Title, err)
		}
		created++
	}
	log.Printf("Created %d projects", created)
	return created
}

func seedEvents(ctx context.Context, repo repository.EventRepository) int {
	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Events already present (%d), skipping", len(existing))
		return 0
	}

	now := time.Now()
	samples := []model.EventInput{
		{
			Title:       "Public Participation Forum",
			Description: "Open forum on next year's development priorities. All residents welcome.",
			EventDate:   now.AddDate(0, 0, 14),
			StartTime:   "10:00",
			EndTime:     "13:00",
			Location:    "Community Hall",
			Category:    "Public Meeting",
		},
		{
			Title:       "Free Medical Camp",
			Description: "General checkups, eye screening, and child immunization.",
			EventDate:   now.AddDate(0, 1, 0),
			StartTime:   "08:00",
			EndTime:     "16:00",
			Location:    "Sub-County Hospital Grounds",
			Category:    "Health",
		},
	}

	created := 0
	for _, input := range samples {
		if _, err := repo.Create(ctx, &input, 0); err != nil {
			log.Fatalf("Failed to create event %q: %v", input.Title, err)
		}
		created++
	}
	log.Printf("Created %d events", created)
	return created
}
