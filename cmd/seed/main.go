package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"lucky-money/pkg/config"
	"lucky-money/pkg/database"
	"lucky-money/pkg/logger"
	"lucky-money/pkg/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

const deadlineLayout = "2006-01-02"

type catalogFile struct {
	DonationTypes []donationTypeSeed `yaml:"donation_types"`
	Goals         []goalSeed         `yaml:"goals"`
}

type donationTypeSeed struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	SuggestedAmount int64  `yaml:"suggested_amount"`
	Icon            string `yaml:"icon"`
	DisplayOrder    int    `yaml:"display_order"`
}

type goalSeed struct {
	Title        string          `yaml:"title"`
	Description  string          `yaml:"description"`
	TargetAmount int64           `yaml:"target_amount"`
	Deadline     string          `yaml:"deadline"`
	DisplayOrder int             `yaml:"display_order"`
	Milestones   []milestoneSeed `yaml:"milestones"`
}

type milestoneSeed struct {
	Amount      int64  `yaml:"amount"`
	Description string `yaml:"description"`
}

func main() {
	var catalogPath string
	flag.StringVar(&catalogPath, "catalog", "seed/catalog.yaml", "Path to the catalog file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithEnv(cfg.AppEnv).With("cmd", "seed")

	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		log.Error("Failed to read catalog: %v", err)
		panic(err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, catalog, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func loadCatalog(path string) (*catalogFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &catalog, nil
}

// seedDatabase can run repeatedly. Types are matched by id and goals by
// title, and existing rows are left untouched.
func seedDatabase(db *gorm.DB, catalog *catalogFile, log *logger.Logger) error {
	for _, t := range catalog.DonationTypes {
		created, err := seedDonationType(db, t)
		if err != nil {
			return fmt.Errorf("failed to seed donation type %s: %w", t.ID, err)
		}
		if !created {
			log.Info("Donation type %s already exists, skipping", t.ID)
			continue
		}
		log.Info("Created donation type: %s", t.Name)
	}

	for _, g := range catalog.Goals {
		created, err := seedGoal(db, g)
		if err != nil {
			return fmt.Errorf("failed to seed goal %q: %w", g.Title, err)
		}
		if !created {
			log.Info("Goal %q already exists, skipping", g.Title)
			continue
		}
		log.Info("Created goal: %s (%d milestones)", g.Title, len(g.Milestones))
	}

	return nil
}

func seedDonationType(db *gorm.DB, t donationTypeSeed) (bool, error) {
	var existing models.DonationType
	err := db.Where("id = ?", t.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	return true, db.Create(&models.DonationType{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		SuggestedAmount: decimal.NewFromInt(t.SuggestedAmount),
		Icon:            t.Icon,
		IsActive:        true,
		DisplayOrder:    t.DisplayOrder,
	}).Error
}

func seedGoal(db *gorm.DB, g goalSeed) (bool, error) {
	var existing models.Goal
	err := db.Where("title = ?", g.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	goal := &models.Goal{
		Title:        g.Title,
		Description:  g.Description,
		TargetAmount: decimal.NewFromInt(g.TargetAmount),
		Status:       models.GoalActive,
		DisplayOrder: g.DisplayOrder,
	}
	if g.Deadline != "" {
		deadline, err := time.Parse(deadlineLayout, g.Deadline)
		if err != nil {
			return false, fmt.Errorf("invalid deadline %q: %w", g.Deadline, err)
		}
		goal.Deadline = &deadline
	}
	for _, m := range g.Milestones {
		goal.Milestones = append(goal.Milestones, models.GoalMilestone{
			Amount:      decimal.NewFromInt(m.Amount),
			Description: m.Description,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(goal).Error; err != nil {
			return err
		}
		return tx.Create(&models.Activity{
			Type:    models.ActivityGoalCreated,
			Content: fmt.Sprintf("New goal %q was created", goal.Title),
			Metadata: map[string]interface{}{
				"goal_id":    goal.ID,
				"goal_title": goal.Title,
			},
		}).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
