package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"msgboard/internal/auth"
	"msgboard/internal/config"
	"msgboard/internal/db"
	apperrors "msgboard/internal/errors"
	"msgboard/internal/repository"
	"msgboard/internal/service"
)

//go:embed seed.json
var defaultSeed []byte

// SeedUser is one entry of the seed document.
type SeedUser struct {
	Username   string        `json:"username"`
	Password   string        `json:"password"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	PictureURL string        `json:"picture_url"`
	Messages   []SeedMessage `json:"messages"`
}

// SeedMessage is a message posted on the owning user's board.
type SeedMessage struct {
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type services struct {
	auth     service.AuthService
	messages service.MessageService
	tags     service.TagService
}

func main() {
	source := flag.String("source", "", "seed file path or http(s) URL (defaults to the bundled data)")
	flag.Parse()

	slog.Info("starting seed script")

	cfg, err := config.Load()
	if err != nil {
		fatal("load config", err)
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		fatal("connect to database", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		fatal("run migrations", err)
	}
	slog.Info("database ready", "driver", cfg.DBDriver)

	users, err := loadSeed(*source)
	if err != nil {
		fatal("load seed data", err)
	}
	slog.Info("loaded seed data", "users", len(users))

	userRepo := repository.NewUserRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	svc := services{
		auth:     service.NewAuthService(userRepo, auth.NewBcryptHasher(cfg.BcryptCost)),
		messages: service.NewMessageService(userRepo, messageRepo),
		tags:     service.NewTagService(tagRepo, messageRepo),
	}

	created, skipped, messages, err := seedUsers(context.Background(), svc, users)
	if err != nil {
		fatal("seed users", err)
	}

	slog.Info("seed completed",
		"users_created", created,
		"users_skipped", skipped,
		"messages_created", messages,
	)
}

// loadSeed reads the seed document from a URL, a file, or the bundled default.
func loadSeed(source string) ([]SeedUser, error) {
	var (
		body []byte
		err  error
	)
	switch {
	case source == "":
		body = defaultSeed
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		body, err = fetch(source)
	default:
		body, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var users []SeedUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return users, nil
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// seedUsers registers each user and posts their messages. Users whose
// username already exists are skipped along with their messages, so the
// script can be rerun against a seeded database.
func seedUsers(ctx context.Context, svc services, users []SeedUser) (created, skipped, messages int, err error) {
	for _, u := range users {
		user, err := svc.auth.Register(ctx, service.RegisterInput{
			Username:   u.Username,
			Password:   u.Password,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			PictureURL: u.PictureURL,
		})
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			slog.Info("user exists, skipping", "username", u.Username)
			skipped++
			continue
		}
		if err != nil {
			return created, skipped, messages, fmt.Errorf("error registering %s: %w", u.Username, err)
		}
		created++

		for _, m := range u.Messages {
			msg, err := svc.messages.Create(ctx, user.ID, service.CreateMessageInput{
				Author:  m.Author,
				Content: m.Content,
			})
			if err != nil {
				return created, skipped, messages, fmt.Errorf("error posting message for %s: %w", u.Username, err)
			}
			messages++

			for _, name := range m.Tags {
				if _, err := svc.tags.AttachTag(ctx, user.ID, msg.ID, name); err != nil {
					return created, skipped, messages, fmt.Errorf("error tagging message %d: %w", msg.ID, err)
				}
			}
		}
	}
	return created, skipped, messages, nil
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
