package domain

import (
	"context"
	"io"
)

// API defines the remote Strongspace operations used by command handlers.
// Failures are reported as *api.Error values so the dispatcher can classify them.
type API interface {
	// Login exchanges a username and password for an API token.
	Login(ctx context.Context, username, password string) (string, error)

	// Profile returns the authenticated account.
	Profile(ctx context.Context) (Profile, error)

	// Spaces lists the spaces owned by the account.
	Spaces(ctx context.Context) ([]Space, error)

	// CreateSpace creates a new space of the given type.
	CreateSpace(ctx context.Context, name, spaceType string) (Space, error)

	// DeleteSpace removes a space and all its snapshots.
	DeleteSpace(ctx context.Context, name string) error

	// Snapshots lists the snapshots of a space.
	Snapshots(ctx context.Context, space string) ([]Snapshot, error)

	// CreateSnapshot takes a snapshot of a space.
	CreateSnapshot(ctx context.Context, space, name string) (Snapshot, error)

	// DeleteSnapshot removes a snapshot from a space.
	DeleteSnapshot(ctx context.Context, space, snapshot string) error

	// SSHKeys lists the registered public keys.
	SSHKeys(ctx context.Context) ([]SSHKey, error)

	// AddSSHKey registers a public key.
	AddSSHKey(ctx context.Context, key string) (SSHKey, error)

	// RemoveSSHKey unregisters a single key.
	RemoveSSHKey(ctx context.Context, id string) error

	// ClearSSHKeys unregisters every key.
	ClearSSHKeys(ctx context.Context) error
}

// CredentialStore persists the login used by the API client.
type CredentialStore interface {
	// Load returns the stored credentials, or empty credentials if none exist.
	Load() (Credentials, error)

	// Save replaces the stored credentials.
	Save(c Credentials) error

	// Clear removes the stored credentials.
	Clear() error
}

// Prompter asks the user for login details.
type Prompter interface {
	// Credentials prompts for a username and password. The username
	// defaults to the given value when the user submits an empty line.
	Credentials(ctx context.Context, defaultUsername string) (username, password string, err error)
}

// PluginManager installs and toggles plugins.
type PluginManager interface {
	// List returns every installed plugin.
	List() ([]Plugin, error)

	// Install copies the plugin found in dir and records it as enabled.
	Install(dir string) (Plugin, error)

	// Uninstall removes the plugin files and its catalog entry.
	Uninstall(name string) error

	// SetEnabled toggles whether the extension loader registers the plugin.
	SetEnabled(name string, enabled bool) error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Session is the optional context handed to every handler constructor.
// It carries the collaborators a handler needs; none of them perform
// network I/O until an operation runs.
type Session struct {
	API         API
	Credentials CredentialStore
	Config      ConfigProvider
	Plugins     PluginManager
	Prompter    Prompter
	Logger      Logger
	Output      OutputWriter
	Styler      Styler
}
