package main

import (
	"time"

	"gorm.io/gorm"

	"github.com/dhnguyen/podcast-tracker/models"
)

// seedData inserts a small set of guests, episodes and assignments for
// local development.
func seedData(db *gorm.DB) error {
	jane := models.Guest{
		Name:     "Jane Smith",
		Bio:      "Tech entrepreneur and AI researcher with 15 years of industry experience.",
		Email:    "jane@example.com",
		Twitter:  "@janesmith",
		LinkedIn: "janesmith",
	}
	bob := models.Guest{
		Name:    "Bob Johnson",
		Bio:     "Bestselling author and public speaker on leadership and innovation.",
		Email:   "bob@example.com",
		Twitter: "@bobjohnson",
		Website: "https://bobjohnson.com",
	}
	alice := models.Guest{
		Name:      "Alice Chen",
		Bio:       "Open-source advocate and senior engineer at a leading tech company.",
		Email:     "alice@example.com",
		Twitter:   "@alicechen",
		Instagram: "alicechen_dev",
	}

	publishedAt := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	scheduledAt := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	one, two, three := 1, 2, 3

	ep1 := models.Episode{
		Title:       "The Future of AI in Everyday Life",
		Description: "Exploring how artificial intelligence is shaping our daily routines and what to expect in the next decade.",
		Status:      models.StatusPublished,
		EpisodeNum:  &one,
		PublishedAt: &publishedAt,
	}
	ep2 := models.Episode{
		Title:       "Leadership Lessons from Silicon Valley",
		Description: "Bob Johnson shares his insights on what makes great leaders in the tech industry.",
		Status:      models.StatusEditing,
		EpisodeNum:  &two,
		ScheduledAt: &scheduledAt,
	}
	ep3 := models.Episode{
		Title:       "Open Source Sustainability",
		Description: "How maintainers keep critical projects alive, and what companies owe the ecosystem.",
		Status:      models.StatusPlanned,
		EpisodeNum:  &three,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, g := range []*models.Guest{&jane, &bob, &alice} {
			if err := tx.Create(g).Error; err != nil {
				return err
			}
		}
		for _, e := range []*models.Episode{&ep1, &ep2, &ep3} {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}

		assignments := []models.EpisodeGuest{
			{EpisodeID: ep1.ID, GuestID: jane.ID, Role: "guest"},
			{EpisodeID: ep2.ID, GuestID: bob.ID, Role: "guest"},
			{EpisodeID: ep3.ID, GuestID: alice.ID, Role: "co-host"},
		}
		for i := range assignments {
			if err := tx.Create(&assignments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
