package cli

import (
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/commands"
)

// BuildRegistry returns the registry of built-in handler types. Plugins
// are added later by the extension loader.
func BuildRegistry() *command.Registry {
	r := command.NewRegistry()

	r.SetFallback(command.TypeSpec{
		Command: "base",
		New:     commands.NewBase,
		Operations: []command.OperationInfo{
			{Name: "login", Usage: "login", Summary: "Log in with your Strongspace credentials"},
			{Name: "logout", Usage: "logout", Summary: "Clear local authentication credentials"},
			{Name: "version", Usage: "version", Summary: "Show the client version"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "help",
		Summary: "List commands and show help for a command",
		New:     commands.NewHelp(r),
		Operations: []command.OperationInfo{
			{Name: "index", Usage: "help [COMMAND]", Summary: "Show help for COMMAND, or list all commands"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "completions",
		Summary: "Print a shell completion script",
		New:     commands.NewCompletions(r),
		Operations: []command.OperationInfo{
			{Name: "index", Usage: "completions [bash|zsh|fish]", Summary: "Print a completion script, e.g. eval \"$(strongspace completions bash)\""},
		},
	})

	r.Register(command.TypeSpec{
		Command: "version",
		Summary: "Show the client version",
		New:     commands.NewVersion,
		Operations: []command.OperationInfo{
			{Name: "index", Summary: "Show the client version"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "auth",
		Summary: "Log in, log out and inspect the stored login",
		New:     commands.NewAuth,
		Operations: []command.OperationInfo{
			{Name: "index", Summary: "Show the logged-in account and storage usage"},
			{Name: "login", Summary: "Log in with your Strongspace credentials"},
			{Name: "logout", Summary: "Clear local authentication credentials"},
			{Name: "reauthorize", Summary: "Prompt for credentials and replace the stored token"},
			{Name: "token", Summary: "Print the stored API token"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "spaces",
		Summary: "Manage spaces and snapshots",
		New:     commands.NewSpaces,
		Operations: []command.OperationInfo{
			{Name: "index", Summary: "List your spaces"},
			{Name: "create", Usage: "spaces:create NAME [--type=normal|backup]", Summary: "Create a space"},
			{Name: "delete", Usage: "spaces:delete NAME", Summary: "Delete a space and its snapshots"},
			{Name: "snapshots", Usage: "spaces:snapshots SPACE", Summary: "List the snapshots of a space"},
			{Name: "create_snapshot", Usage: "spaces:create_snapshot SPACE [NAME]", Summary: "Snapshot a space, named by timestamp unless NAME is given"},
			{Name: "delete_snapshot", Usage: "spaces:delete_snapshot SPACE SNAPSHOT", Summary: "Delete a snapshot"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "keys",
		Summary: "Manage SSH keys for SFTP and rsync access",
		New:     commands.NewKeys,
		Operations: []command.OperationInfo{
			{Name: "index", Summary: "List your keys"},
			{Name: "add", Usage: "keys:add [PATH]", Summary: "Upload a public key, ~/.ssh/id_rsa.pub or id_ed25519.pub by default"},
			{Name: "remove", Usage: "keys:remove ID", Summary: "Remove a key"},
			{Name: "clear", Summary: "Remove all keys"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "config",
		Summary: "Read and write ~/.strongspacerc",
		New:     commands.NewConfig,
		Operations: []command.OperationInfo{
			{Name: "index", Summary: "List configuration values"},
			{Name: "get", Usage: "config:get KEY", Summary: "Print a configuration value"},
			{Name: "set", Usage: "config:set KEY VALUE", Summary: "Set a configuration value"},
			{Name: "unset", Usage: "config:unset KEY", Summary: "Remove a configuration value"},
		},
	})

	r.Register(command.TypeSpec{
		Command: "plugins",
		Summary: "Install and manage plugins",
		New:     commands.NewPlugins,
		Operations: []command.OperationInfo{
			{Name: "index", Summary: "List installed plugins"},
			{Name: "install", Usage: "plugins:install DIR", Summary: "Install the plugin in DIR"},
			{Name: "uninstall", Usage: "plugins:uninstall NAME", Summary: "Remove a plugin"},
			{Name: "enable", Usage: "plugins:enable NAME", Summary: "Enable a plugin"},
			{Name: "disable", Usage: "plugins:disable NAME", Summary: "Disable a plugin without removing it"},
		},
	})

	return r
}
