package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gasupport/internal/app/config"
	"github.com/dmitrijs2005/gasupport/internal/logging"
	"github.com/dmitrijs2005/gasupport/internal/reports"
	"github.com/dmitrijs2005/gasupport/internal/session"
	"github.com/dmitrijs2005/gasupport/internal/shimlogs"
	"github.com/dmitrijs2005/gasupport/internal/storage"
	"github.com/dmitrijs2005/gasupport/internal/users"
)

// App wires the stores and managers behind the REPL commands.
type App struct {
	config   *config.Config
	logger   logging.Logger
	users    *users.Directory
	sessions *session.Manager
	reports  *reports.Store
	shimlogs *shimlogs.Store
	reader   *bufio.Reader
	db       *sql.DB

	// current mirrors the persisted session pointer for prompt rendering.
	current *users.User
}

// NewApp opens the local store and constructs the command surface over it.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	logger.Info(ctx, "store opened", "path", cfg.DatabasePath)

	kv := storage.NewSQLiteKV(db)
	directory := users.NewDirectory(kv)

	return &App{
		config:   cfg,
		logger:   logger,
		users:    directory,
		sessions: session.NewManager(kv, directory),
		reports:  reports.NewStore(kv),
		shimlogs: shimlogs.NewStore(kv),
		reader:   bufio.NewReader(os.Stdin),
		db:       db,
	}, nil
}

// Run restores any persisted session and hands control to the REPL. It
// returns when the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	u, err := a.sessions.Current(ctx)
	if err != nil {
		a.logger.Error(ctx, "failed to restore session", "err", err)
	} else if u != nil {
		a.current = u
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Username))
	}

	printlnFn("Geometry Analys Support CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) isAdmin() bool {
	return a.current != nil && a.current.Role == users.RoleAdmin
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	s := a.current.Username
	if a.current.Role == users.RoleAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
