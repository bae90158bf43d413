package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bhargav-sunil/TaskManagement/internal/config"
	"github.com/Bhargav-sunil/TaskManagement/internal/db"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
	"github.com/Bhargav-sunil/TaskManagement/internal/repository"
)

// seedPassword is shared by all sample accounts.
const seedPassword = "Password@1"

type seedUser struct {
	name  string
	email string
}

var seedUsers = []seedUser{
	{"Emma Thompson", "emma.thompson@techcorp.com"},
	{"James Wilson", "james.wilson@devstudio.io"},
	{"Sophia Chen", "sophia.chen@innovate.dev"},
	{"Liam Patel", "liam.patel@cloudworks.net"},
	{"Olivia Garcia", "olivia.garcia@buildify.app"},
}

type seedTask struct {
	title       string
	description string
	status      string
	priority    string
	owner       int // index into the created users
	dueInDays   int // 0 = no due date
}

var seedTasks = []seedTask{
	{"Prepare quarterly report", "Collect metrics from all teams and compile the summary deck", model.StatusPending, model.PriorityHigh, 0, 7},
	{"Review pull requests", "Clear the backlog of open reviews on the platform repo", model.StatusInProgress, model.PriorityMedium, 1, 2},
	{"Update onboarding docs", "", model.StatusPending, model.PriorityLow, 2, 0},
	{"Fix login timeout", "Sessions drop after five minutes on the staging cluster", model.StatusInProgress, model.PriorityHigh, 1, 1},
	{"Plan team offsite", "Venue, agenda, and travel for the spring offsite", model.StatusCompleted, model.PriorityMedium, 3, 0},
	{"Archive stale branches", "Anything without a commit in six months", model.StatusPending, model.PriorityLow, 4, 14},
	{"Migrate CI runners", "Move the remaining pipelines off the legacy runners", model.StatusPending, model.PriorityHigh, 2, 10},
	{"Write release notes", "Cover the visibility and pagination changes", model.StatusCompleted, model.PriorityMedium, 0, 0},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	tasks := repository.NewTaskRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	created := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := users.FindByEmail(ctx, su.email)
		if err == nil {
			created = append(created, existing)
			continue
		}
		user := &model.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         model.RoleUser,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("create user %s: %v", su.email, err)
		}
		created = append(created, user)
	}
	log.Printf("seeded %d users (password %q)", len(created), seedPassword)

	count := 0
	for _, st := range seedTasks {
		owner := created[st.owner]
		task := &model.Task{
			Title:       st.title,
			Description: st.description,
			Status:      st.status,
			Priority:    st.priority,
			UserID:      owner.ID,
			CreatedBy:   owner.ID,
		}
		if st.dueInDays > 0 {
			due := time.Now().AddDate(0, 0, st.dueInDays)
			task.DueDate = &due
		}
		if err := tasks.Create(ctx, task); err != nil {
			log.Fatalf("create task %q: %v", st.title, err)
		}
		count++
	}
	log.Printf("seeded %d tasks", count)
}
