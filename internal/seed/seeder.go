// Package seed provides helpers to create demo data for the application
// stores. These helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"connecthub/internal/models"
	"connecthub/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// Password is the shared plaintext password of every seeded user.
const Password = "Seeded$Passw0rd!"

// Options tunes the generated data set.
type Options struct {
	Users    int
	Posts    int
	// MaxDays spreads post creation times over the past N days.
	MaxDays int
}

// Seeder populates the stores with generated demo data. It writes through
// the store interfaces so it works against any backend.
type Seeder struct {
	stores *store.Stores
	opts   Options
	rand   *rand.Rand
}

// NewSeeder creates a Seeder bound to the given stores.
func NewSeeder(stores *store.Stores, opts Options) *Seeder {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	if opts.Users <= 0 {
		opts.Users = 50
	}
	if opts.Posts <= 0 {
		opts.Posts = 200
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Seeder{
		stores: stores,
		opts:   opts,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

var interestPool = []string{
	"music", "hiking", "photography", "cooking", "gaming", "reading",
	"cycling", "travel", "film", "gardening", "climbing", "chess",
	"painting", "running", "astronomy",
}

// buildUser constructs a user with a hashed shared password and a random
// set of at least three interests.
func (s *Seeder) buildUser() (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	picks := s.rand.Perm(len(interestPool))
	count := 3 + s.rand.Intn(3)
	interests := make(models.StringList, 0, count)
	for _, i := range picks[:count] {
		interests = append(interests, interestPool[i])
	}

	return &models.User{
		Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		Bio:       gofakeit.Sentence(10),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Interests: interests,
	}, nil
}

// SeedUsers creates the configured number of users, retrying on the rare
// generated-name collision.
func (s *Seeder) SeedUsers(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, s.opts.Users)
	for len(users) < s.opts.Users {
		u, err := s.buildUser()
		if err != nil {
			return nil, err
		}
		if err := s.stores.Users.Create(ctx, u); err != nil {
			if models.HasCode(err, models.CodeDuplicateIdentity) {
				continue
			}
			return nil, err
		}
		users = append(users, u)
	}
	log.Printf("seeded %d users", len(users))
	return users, nil
}

// SeedSocialMesh wires follow edges so every user follows a handful of
// random others.
func (s *Seeder) SeedSocialMesh(ctx context.Context, users []*models.User) error {
	edges := 0
	for _, u := range users {
		targets := s.rand.Perm(len(users))
		wanted := 2 + s.rand.Intn(6)
		for _, t := range targets {
			if wanted == 0 {
				break
			}
			other := users[t]
			if other.ID == u.ID {
				continue
			}
			following, err := s.stores.Follows.Toggle(ctx, u.ID, other.ID)
			if err != nil {
				return err
			}
			if following {
				edges++
			}
			wanted--
		}
	}
	log.Printf("seeded %d follow edges", edges)
	return nil
}

// SeedPosts creates posts with creation times spread over the past MaxDays
// days, authored by random users.
func (s *Seeder) SeedPosts(ctx context.Context, users []*models.User) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, s.opts.Posts)
	for i := 0; i < s.opts.Posts; i++ {
		author := users[s.rand.Intn(len(users))]

		back := time.Duration(s.rand.Intn(s.opts.MaxDays))*24*time.Hour +
			time.Duration(s.rand.Intn(24))*time.Hour +
			time.Duration(s.rand.Intn(60))*time.Minute

		post := &models.Post{
			UserID:    author.ID,
			Content:   gofakeit.Sentence(8 + s.rand.Intn(20)),
			CreatedAt: time.Now().Add(-back),
		}
		if s.rand.Intn(3) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}

		if err := s.stores.Posts.Create(ctx, post); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	log.Printf("seeded %d posts", len(posts))
	return posts, nil
}

// SeedEngagement sprinkles likes and comments over the posts.
func (s *Seeder) SeedEngagement(ctx context.Context, users []*models.User, posts []*models.Post) error {
	likes, comments := 0, 0
	for _, post := range posts {
		for _, u := range users {
			if s.rand.Intn(5) != 0 {
				continue
			}
			liked, _, err := s.stores.Posts.ToggleLike(ctx, post.ID, u.ID)
			if err != nil {
				return err
			}
			if liked {
				likes++
			}
		}

		for i := 0; i < s.rand.Intn(4); i++ {
			commenter := users[s.rand.Intn(len(users))]
			err := s.stores.Posts.AddComment(ctx, &models.Comment{
				PostID:  post.ID,
				UserID:  commenter.ID,
				Content: gofakeit.Sentence(5 + s.rand.Intn(10)),
			})
			if err != nil {
				return err
			}
			comments++
		}
	}
	log.Printf("seeded %d likes, %d comments", likes, comments)
	return nil
}

// SeedConversations creates short message threads between random user pairs.
func (s *Seeder) SeedConversations(ctx context.Context, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}

	threads := len(users) / 2
	messages := 0
	for i := 0; i < threads; i++ {
		a := users[s.rand.Intn(len(users))]
		b := users[s.rand.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}

		length := 2 + s.rand.Intn(6)
		for j := 0; j < length; j++ {
			from, to := a, b
			if j%2 == 1 {
				from, to = b, a
			}
			err := s.stores.Messages.Create(ctx, &models.ChatMessage{
				SenderID:   from.ID,
				ReceiverID: to.ID,
				Content:    gofakeit.Sentence(3 + s.rand.Intn(8)),
			})
			if err != nil {
				return err
			}
			messages++
		}
	}
	log.Printf("seeded %d messages", messages)
	return nil
}

// Run executes the full seeding pipeline.
func (s *Seeder) Run(ctx context.Context) error {
	users, err := s.SeedUsers(ctx)
	if err != nil {
		return fmt.Errorf("user seeding failed: %w", err)
	}
	if err := s.SeedSocialMesh(ctx, users); err != nil {
		return fmt.Errorf("follow seeding failed: %w", err)
	}
	posts, err := s.SeedPosts(ctx, users)
	if err != nil {
		return fmt.Errorf("post seeding failed: %w", err)
	}
	if err := s.SeedEngagement(ctx, users, posts); err != nil {
		return fmt.Errorf("engagement seeding failed: %w", err)
	}
	if err := s.SeedConversations(ctx, users); err != nil {
		return fmt.Errorf("message seeding failed: %w", err)
	}
	return nil
}
