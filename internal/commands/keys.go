package commands

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/ui"
	"github.com/strongspace/cli/internal/usage"
)

// defaultKeyFiles are tried in order by keys:add when no path is given.
var defaultKeyFiles = []string{"id_rsa.pub", "id_ed25519.pub"}

// Keys manages the SSH keys used for SFTP and rsync access.
type Keys struct {
	command.Operations
	handler

	readFile func(string) ([]byte, error)
	homeDir  func() (string, error)
}

// NewKeys is the factory for the keys type.
func NewKeys(args []string, session *domain.Session) command.Handler {
	h := &Keys{
		handler:  newHandler(args, session),
		readFile: os.ReadFile,
		homeDir:  os.UserHomeDir,
	}
	h.Operations = h.bind(map[string]operation{
		command.DefaultOperation: h.list,
		"add":                    h.add,
		"remove":                 h.remove,
		"clear":                  h.clear,
	})
	return h
}

func (h *Keys) list(ctx context.Context, s *domain.Session) error {
	keys, err := s.API.SSHKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		_, _ = s.Output.Println(s.Styler.Muted("You have no keys."))
		return nil
	}

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k.ID, k.Fingerprint, keyComment(k.Key)})
	}
	s.Output.Pager(ui.Table([]string{"ID", "FINGERPRINT", "COMMENT"}, rows))
	return nil
}

func (h *Keys) add(ctx context.Context, s *domain.Session) error {
	args, err := h.parseFlags("keys:add", nil)
	if err != nil {
		return err
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	} else if path, err = h.findDefaultKey(); err != nil {
		return err
	}

	data, err := h.readFile(path)
	if err != nil {
		return usage.Failed("Could not read %s: %v", path, err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return usage.Failed("%s is empty", path)
	}

	added, err := s.API.AddSSHKey(ctx, key)
	if err != nil {
		return err
	}
	_, _ = s.Output.Println(s.Styler.Success("Uploaded " + path + " (" + added.Fingerprint + ")"))
	return nil
}

func (h *Keys) findDefaultKey() (string, error) {
	home, err := h.homeDir()
	if err != nil {
		return "", err
	}
	for _, name := range defaultKeyFiles {
		path := filepath.Join(home, ".ssh", name)
		if _, err := h.readFile(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", usage.Failed("Could not read %s: %v", path, err)
		}
	}
	return "", usage.Failed("No public key found in %s. Pass the key file as an argument.", filepath.Join(home, ".ssh"))
}

func (h *Keys) remove(ctx context.Context, s *domain.Session) error {
	args, err := h.parseFlags("keys:remove", nil)
	if err != nil {
		return err
	}
	if err := requireArgs(args, "id"); err != nil {
		return err
	}
	if err := s.API.RemoveSSHKey(ctx, args[0]); err != nil {
		return err
	}
	_, _ = s.Output.Println("Removed key " + args[0])
	return nil
}

func (h *Keys) clear(ctx context.Context, s *domain.Session) error {
	if err := s.API.ClearSSHKeys(ctx); err != nil {
		return err
	}
	_, _ = s.Output.Println("Removed all keys")
	return nil
}

// keyComment returns the trailing comment of an authorized_keys line,
// usually user@host.
func keyComment(key string) string {
	fields := strings.Fields(key)
	if len(fields) < 3 {
		return ""
	}
	return strings.Join(fields[2:], " ")
}
