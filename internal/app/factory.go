// Package app wires the collaborators handed to every command handler.
package app

import (
	"runtime"
	"strconv"
	"time"

	"github.com/strongspace/cli/internal/api"
	"github.com/strongspace/cli/internal/config"
	"github.com/strongspace/cli/internal/credentials"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/paths"
	"github.com/strongspace/cli/internal/plugin"
	"github.com/strongspace/cli/internal/prompt"
	"github.com/strongspace/cli/internal/store"
	"github.com/strongspace/cli/internal/ui"
	"github.com/strongspace/cli/internal/ui/style"
)

// Tool is the executable name shown in messages.
const Tool = "strongspace"

// Version is set at build time with -ldflags "-X .../app.Version=...".
var Version = "dev"

// UserAgent identifies the client to the API.
func UserAgent() string {
	return Tool + "/" + Version + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
}

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// APIURL overrides the api_url config key when set.
	APIURL     string
	APITimeout time.Duration

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	DBPath     string
	PluginsDir string

	// Reserved reports command names plugins may not take.
	Reserved func(name string) bool
}

// DefaultOptions reads the options from configuration.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	timeout := 30 * time.Second
	if sec, err := strconv.Atoi(cfg["api_timeout_sec"]); err == nil && sec > 0 {
		timeout = time.Duration(sec) * time.Second
	}

	pluginsDir := cfg["plugins_dir"]
	if pluginsDir == "" {
		pluginsDir = paths.PluginsDir()
	}

	return Options{
		APITimeout:   timeout,
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		StyleEnabled: true,
		StyleConfig:  cfg,
		DBPath:       paths.DBPath(),
		PluginsDir:   pluginsDir,
	}
}

// App owns the session and the resources behind it.
type App struct {
	Session *domain.Session
	// Catalog is nil when the plugin database could not be opened.
	Catalog plugin.Catalog

	db *store.Store
}

// New builds an App. Only an unusable credentials path is fatal; a broken
// log file or plugin catalog degrades to no logging or no plugins.
func New(opts Options) (*App, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		if l, err := log.New(paths.LogFilePath(), opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	creds, err := credentials.NewStore()
	if err != nil {
		return nil, err
	}

	cfg := config.NewProvider()

	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL, _ = cfg.Get("api_url")
	}
	apiOpts := []api.Option{
		api.WithLogger(logger),
		api.WithUserAgent(UserAgent()),
	}
	if opts.APITimeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(opts.APITimeout))
	}

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(cfg.Get))

	a := &App{
		Session: &domain.Session{
			API:         api.New(apiURL, creds, apiOpts...),
			Credentials: creds,
			Config:      cfg,
			Prompter:    prompt.New(),
			Logger:      logger,
			Output:      ui.NewWriter(writerOpts...),
			Styler:      style.NewStyler(),
		},
	}

	if opts.DBPath != "" {
		db, err := store.New(opts.DBPath)
		if err != nil {
			logger.Warn("app: plugin catalog unavailable: %v", err)
		} else {
			a.db = db
			a.Catalog = db
			a.Session.Plugins = plugin.NewManager(db, opts.PluginsDir, opts.Reserved)
		}
	}

	return a, nil
}

// Close releases the logger and the plugin database.
func (a *App) Close() error {
	if a.Session != nil && a.Session.Logger != nil {
		_ = a.Session.Logger.Close()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
