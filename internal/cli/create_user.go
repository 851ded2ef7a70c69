package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/shelf/internal/auth"
	"github.com/mrlokans/shelf/internal/config"
	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/database/users"
)

// CreateUserCommand registers an account without going through the API.
type CreateUserCommand struct {
	Config       *config.Config
	DatabasePath string
	Email        string
	Password     string
}

// NewCreateUserCommand creates a new CreateUserCommand
func NewCreateUserCommand(cfg *config.Config) *CreateUserCommand {
	return &CreateUserCommand{Config: cfg}
}

// ParseFlags parses command line flags
func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.Config.Database.Path, "Path to the sqlite database file (ignored for postgres)")
	fs.StringVar(&cmd.Email, "email", "", "Email address of the new user (required)")
	fs.StringVar(&cmd.Password, "password", os.Getenv("SHELF_PASSWORD"), "Password of the new user (defaults to $SHELF_PASSWORD)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user -email <email> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Register a user with the same rules as POST /api/auth/register.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Email == "" {
		return errors.New("-email is required")
	}
	return nil
}

// Run executes the create-user command
func (cmd *CreateUserCommand) Run() error {
	dbCfg := cmd.Config.Database
	dbCfg.Path = cmd.DatabasePath
	dbCfg.LogLevel = "silent"

	db, err := database.NewDatabase(dbCfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	issuer := auth.NewTokenIssuer(cmd.Config.JWT)
	service := auth.NewService(users.NewRepository(db.DB), issuer, cmd.Config.Auth)

	user, err := service.Register(cmd.Email, cmd.Password)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			return errors.New(strings.Join(verr.Errors, "; "))
		}
		return err
	}

	fmt.Printf("Created user %s (%s)\n", user.Email, user.ID)
	return nil
}
