package commands

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/pennywise-dev/pennywise/internal/aggregate"
	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/directory"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/logging"
	"github.com/pennywise-dev/pennywise/internal/model"
	"github.com/pennywise-dev/pennywise/internal/refresh"
	"github.com/pennywise-dev/pennywise/internal/session"
	"github.com/pennywise-dev/pennywise/internal/store"
	"github.com/pennywise-dev/pennywise/internal/store/memstore"
	"github.com/pennywise-dev/pennywise/internal/store/sqlitekv"
)

// ErrNotLoggedIn is returned by commands that need an active session.
var ErrNotLoggedIn = errors.New("not logged in (run 'pennywise login' first)")

// refreshQuiet is the debounce window for display refresh logging.
const refreshQuiet = 100 * time.Millisecond

// app bundles the collaborators every command needs. The session is an
// explicit dependency here, never a package-level global.
type app struct {
	cfg     *config.Config
	store   store.Store
	users   *directory.Directory
	session *session.Session
	ledger  *ledger.Service
	refresh *refresh.Debouncer
}

// openApp loads configuration, opens the store, and wires the
// directory, session, and ledger service together.
func openApp() (*app, error) {
	// A .env file is optional; a missing one is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.Log.Level)

	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:     cfg,
		store:   st,
		users:   directory.New(st),
		session: session.New(st),
		ledger:  ledger.NewService(ledger.NewRepository(st)),
	}
	a.refresh = refresh.NewDebouncer(refreshQuiet, a.logRefresh)
	a.ledger.SetNotifier(a.refresh)
	return a, nil
}

// Close stops any pending refresh and releases the store.
func (a *app) Close() error {
	a.refresh.Stop()
	return a.store.Close()
}

// requireUser restores the persisted session and loads that user's
// ledger into memory.
func (a *app) requireUser() (*model.User, error) {
	user, err := a.session.Restore()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotLoggedIn
	}
	if err := a.ledger.Load(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// logRefresh stands in for the presentation recompute: it fires once
// per burst of mutations, after the quiet period.
func (a *app) logRefresh() {
	l := a.ledger.Ledger()
	if l == nil {
		return
	}
	totals := aggregate.TotalsOf(l.Transactions)
	slog.Debug("ledger changed",
		"user", l.UserID,
		"transactions", len(l.Transactions),
		"net", totals.Net.String(),
	)
}

func loadConfig() (*config.Config, error) {
	path := os.Getenv("PENNYWISE_CONFIG")
	if path == "" {
		path = filepath.Join(dataDir(), "pennywise.yaml")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(dataDir()), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func dataDir() string {
	if dir := os.Getenv("PENNYWISE_DATA_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".pennywise")
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.Store.Backend == "memory" {
		return memstore.New(), nil
	}
	return sqlitekv.Open(cfg.Store.Path)
}
