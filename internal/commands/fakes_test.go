package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/ui"
	"github.com/strongspace/cli/internal/ui/style"
)

type fakeAPI struct {
	err   error
	calls []string

	token     string
	profile   domain.Profile
	spaces    []domain.Space
	snapshots []domain.Snapshot
	keys      []domain.SSHKey

	loginUser, loginPassword string
	createdType              string
	snapshotName             string
	addedKey                 string
}

func (f *fakeAPI) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (string, error) {
	f.loginUser, f.loginPassword = username, password
	return f.token, f.record("Login")
}

func (f *fakeAPI) Profile(context.Context) (domain.Profile, error) {
	return f.profile, f.record("Profile")
}

func (f *fakeAPI) Spaces(context.Context) ([]domain.Space, error) {
	return f.spaces, f.record("Spaces")
}

func (f *fakeAPI) CreateSpace(_ context.Context, name, spaceType string) (domain.Space, error) {
	f.createdType = spaceType
	return domain.Space{Name: name, Type: spaceType}, f.record("CreateSpace " + name)
}

func (f *fakeAPI) DeleteSpace(_ context.Context, name string) error {
	return f.record("DeleteSpace " + name)
}

func (f *fakeAPI) Snapshots(_ context.Context, space string) ([]domain.Snapshot, error) {
	return f.snapshots, f.record("Snapshots " + space)
}

func (f *fakeAPI) CreateSnapshot(_ context.Context, space, name string) (domain.Snapshot, error) {
	f.snapshotName = name
	return domain.Snapshot{Name: name}, f.record("CreateSnapshot " + space)
}

func (f *fakeAPI) DeleteSnapshot(_ context.Context, space, snapshot string) error {
	return f.record("DeleteSnapshot " + space + "@" + snapshot)
}

func (f *fakeAPI) SSHKeys(context.Context) ([]domain.SSHKey, error) {
	return f.keys, f.record("SSHKeys")
}

func (f *fakeAPI) AddSSHKey(_ context.Context, key string) (domain.SSHKey, error) {
	f.addedKey = key
	return domain.SSHKey{ID: "k1", Key: key, Fingerprint: "SHA256:abc"}, f.record("AddSSHKey")
}

func (f *fakeAPI) RemoveSSHKey(_ context.Context, id string) error {
	return f.record("RemoveSSHKey " + id)
}

func (f *fakeAPI) ClearSSHKeys(context.Context) error {
	return f.record("ClearSSHKeys")
}

type fakeCredentials struct {
	creds   domain.Credentials
	saved   []domain.Credentials
	cleared bool
}

func (f *fakeCredentials) Load() (domain.Credentials, error) { return f.creds, nil }

func (f *fakeCredentials) Save(c domain.Credentials) error {
	f.creds = c
	f.saved = append(f.saved, c)
	return nil
}

func (f *fakeCredentials) Clear() error {
	f.creds = domain.Credentials{}
	f.cleared = true
	return nil
}

type fakeConfig struct {
	values map[string]string
}

func (f *fakeConfig) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeConfig) GetAll() (map[string]string, error) { return f.values, nil }

func (f *fakeConfig) Set(key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeConfig) Unset(key string) error {
	delete(f.values, key)
	return nil
}

type fakePrompter struct {
	username, password string
	err                error
	defaults           []string
}

func (f *fakePrompter) Credentials(_ context.Context, defaultUsername string) (string, string, error) {
	f.defaults = append(f.defaults, defaultUsername)
	return f.username, f.password, f.err
}

type fakePlugins struct {
	plugins []domain.Plugin
	err     error
	calls   []string
}

func (f *fakePlugins) List() ([]domain.Plugin, error) { return f.plugins, f.err }

func (f *fakePlugins) Install(dir string) (domain.Plugin, error) {
	f.calls = append(f.calls, "Install "+dir)
	return domain.Plugin{Name: "backup"}, f.err
}

func (f *fakePlugins) Uninstall(name string) error {
	f.calls = append(f.calls, "Uninstall "+name)
	return f.err
}

func (f *fakePlugins) SetEnabled(name string, enabled bool) error {
	if enabled {
		f.calls = append(f.calls, "Enable "+name)
	} else {
		f.calls = append(f.calls, "Disable "+name)
	}
	return f.err
}

type fixture struct {
	api     *fakeAPI
	creds   *fakeCredentials
	config  *fakeConfig
	prompt  *fakePrompter
	plugins *fakePlugins
	out     *bytes.Buffer
	session *domain.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		api:     &fakeAPI{token: "tok-new"},
		creds:   &fakeCredentials{},
		config:  &fakeConfig{values: map[string]string{}},
		prompt:  &fakePrompter{username: "ada", password: "secret"},
		plugins: &fakePlugins{},
		out:     &bytes.Buffer{},
	}
	f.session = &domain.Session{
		API:         f.api,
		Credentials: f.creds,
		Config:      f.config,
		Plugins:     f.plugins,
		Prompter:    f.prompt,
		Logger:      log.NopLogger{},
		Output:      ui.NewWriterTo(f.out, ui.WithPagerDisabled()),
		Styler:      style.Plain(),
	}
	return f
}
