// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"lingua/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumTopics   int
	ShouldClean bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed populates the database with test data: users with vocabulary and
// notes, plaza topics with comments, a like mesh, and chat threads.
// All seeded users share the password "password123".
func Seed(db *gorm.DB, opts Options) error {
	s := NewSeeder(db)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("could not clear all existing data, continuing anyway")
		}
	}

	users, err := s.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	if err := s.CreateStudyContent(users); err != nil {
		return fmt.Errorf("failed to create study content: %w", err)
	}

	topics, err := s.CreateTopics(users, opts.NumTopics)
	if err != nil {
		return fmt.Errorf("failed to create topics: %w", err)
	}
	log.Printf("%d topics created", len(topics))

	if err := s.CreateLikeMesh(users); err != nil {
		return fmt.Errorf("failed to create like mesh: %w", err)
	}

	if err := s.CreateChats(users); err != nil {
		return fmt.Errorf("failed to create chats: %w", err)
	}

	log.Println("database seeding completed")
	return nil
}

// ClearAll removes all seedable data.
func (s *Seeder) ClearAll() error {
	if s.db.Dialector.Name() == "postgres" {
		return s.db.Exec(`TRUNCATE TABLE messages, likes, comments, topics, feedbacks, vocab_entries, notes, users RESTART IDENTITY CASCADE;`).Error
	}
	for _, model := range []any{
		&models.Message{}, &models.Like{}, &models.Comment{}, &models.Topic{},
		&models.Feedback{}, &models.VocabEntry{}, &models.Note{}, &models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateUsers inserts count users with unique usernames and a shared
// bcrypt-hashed password.
func (s *Seeder) CreateUsers(count int) ([]models.User, error) {
	// One hash for all seed users keeps seeding fast.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s_%s%d",
			strings.ToLower(gofakeit.FirstName()),
			strings.ToLower(gofakeit.LastName()),
			s.rng.Intn(1000))

		user := models.User{
			Username: username,
			Password: string(hashed),
			Avatar:   fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateStudyContent gives each user a handful of notes and vocabulary entries.
func (s *Seeder) CreateStudyContent(users []models.User) error {
	for _, user := range users {
		for i := 0; i < 1+s.rng.Intn(4); i++ {
			note := models.Note{
				UserID:  user.ID,
				Text:    gofakeit.Paragraph(1, 2, 8, " "),
				Summary: gofakeit.Sentence(6),
			}
			if err := s.db.Create(&note).Error; err != nil {
				return err
			}
		}

		seen := map[string]bool{}
		for i := 0; i < 2+s.rng.Intn(10); i++ {
			word := strings.ToLower(gofakeit.Word())
			if seen[word] {
				continue
			}
			seen[word] = true

			entry := models.VocabEntry{
				UserID:  user.ID,
				Word:    word,
				Meaning: gofakeit.Sentence(5),
			}
			if err := s.db.Create(&entry).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateTopics publishes count topics authored by random users, each with a
// few comments.
func (s *Seeder) CreateTopics(users []models.User, count int) ([]models.Topic, error) {
	if len(users) == 0 {
		return nil, nil
	}

	topics := make([]models.Topic, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.rng.Intn(len(users))]
		topic := models.Topic{
			UserID:   author.ID,
			Title:    gofakeit.Sentence(5),
			BodyHTML: "<p>" + gofakeit.Paragraph(1, 3, 10, "</p><p>") + "</p>",
		}
		if s.rng.Intn(3) == 0 {
			topic.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
		}
		if err := s.db.Create(&topic).Error; err != nil {
			return nil, err
		}

		for j := 0; j < s.rng.Intn(5); j++ {
			commenter := users[s.rng.Intn(len(users))]
			comment := models.Comment{
				TopicID: topic.ID,
				UserID:  commenter.ID,
				Text:    gofakeit.Sentence(8),
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return nil, err
			}
		}

		topics = append(topics, topic)
	}
	return topics, nil
}

// CreateLikeMesh wires a random like graph and keeps reputation counters in
// sync with the edges.
func (s *Seeder) CreateLikeMesh(users []models.User) error {
	for _, liker := range users {
		for i := 0; i < s.rng.Intn(4); i++ {
			liked := users[s.rng.Intn(len(users))]
			if liked.ID == liker.ID {
				continue
			}

			edge := models.Like{LikerID: liker.ID, LikedID: liked.ID}
			err := s.db.Create(&edge).Error
			if err != nil {
				// Duplicate pair from a previous round; skip.
				continue
			}
			if err := s.db.Model(&models.User{}).
				Where("id = ?", liked.ID).
				Update("reputation_score", gorm.Expr("reputation_score + 1")).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateChats seeds short back-and-forth message threads between random pairs.
func (s *Seeder) CreateChats(users []models.User) error {
	if len(users) < 2 {
		return nil
	}

	for i := 0; i < len(users); i++ {
		a := users[s.rng.Intn(len(users))]
		b := users[s.rng.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}

		for j := 0; j < 2+s.rng.Intn(6); j++ {
			msg := models.Message{
				SenderID:   a.ID,
				ReceiverID: b.ID,
				Text:       gofakeit.Sentence(7),
			}
			if j%2 == 1 {
				msg.SenderID, msg.ReceiverID = b.ID, a.ID
			}
			if err := s.db.Create(&msg).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
