// Package app wires the store and services together for an embedding host
// (the UI shell). There is no network surface and no CLI; the host invokes
// one store operation per user action and re-renders from the result.
package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/blakekali/blakeprintz/pkg/credential"
	"github.com/blakekali/blakeprintz/pkg/sessiontoken"
	"github.com/blakekali/blakeprintz/pkg/slogx"
	"github.com/blakekali/blakeprintz/service"
	"github.com/blakekali/blakeprintz/store"
	"github.com/blakekali/blakeprintz/store/drivers/sqlite"
)

const tokenIssuer = "blakeprintz"

type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	Users     *service.UserService
	Inventory *service.InventoryService
	Orders    *service.OrderService
	Training  *service.TrainingService
	Sessions  *service.SessionService
}

// New opens the on-device store, applies migrations, wires the services, and
// runs first-launch seeding. Seeding failures are logged but do not fail
// construction: the app stays interactive with an empty account list, which
// is the product's historical behavior when storage is unavailable.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "blakeprintz",
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(cfg.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	app.db = db

	verifier, err := verifierFor(cfg.PasswordScheme)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	secret := []byte(cfg.SessionSecret)
	if len(secret) == 0 {
		// Tokens only need to outlive the process on a single device;
		// an ephemeral secret just means re-authenticating after restart.
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("generate session secret: %w", err)
		}
	}

	app.Users = &service.UserService{Store: db, Verifier: verifier}
	if cfg.SignInAttempts > 0 {
		app.Users.Throttle = service.NewSignInThrottle(cfg.SignInAttempts, cfg.SignInWindow)
	}
	app.Inventory = service.NewInventoryService(db)
	app.Orders = service.NewOrderService()
	app.Training = service.NewTrainingService()
	app.Sessions = &service.SessionService{
		Store:  db,
		Tokens: sessiontoken.NewMinter(secret, tokenIssuer, cfg.SessionTTL),
	}

	ctx := slogx.WithContext(context.Background(), app.logger)
	if err := app.Users.Initialize(ctx); err != nil {
		app.logger.Error("account seeding failed, continuing with empty account list", "error", err)
	}

	app.logger.Info("blakeprintz core ready",
		"database", cfg.DatabaseFile,
		"password_scheme", cfg.PasswordScheme,
	)
	return app, nil
}

// Close releases the underlying store.
func (app *Application) Close() error {
	return app.db.Close()
}

func verifierFor(scheme string) (credential.Verifier, error) {
	switch scheme {
	case PasswordSchemePlain, "":
		return credential.Plaintext{}, nil
	case PasswordSchemeArgon2:
		return credential.NewArgon2(), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}
