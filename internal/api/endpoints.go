package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/strongspace/cli/internal/domain"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges a username and password for an API token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out tokenResponse
	auth := basicAuth{username: username, secret: password}
	if err := c.do(ctx, http.MethodGet, "/login", auth, nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Profile returns the authenticated account.
func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	var out domain.Profile
	err := c.call(ctx, http.MethodGet, "/profile", nil, &out)
	return out, err
}

// Spaces lists the spaces owned by the account.
func (c *Client) Spaces(ctx context.Context) ([]domain.Space, error) {
	var out struct {
		Spaces []domain.Space `json:"spaces"`
	}
	err := c.call(ctx, http.MethodGet, "/spaces", nil, &out)
	return out.Spaces, err
}

// CreateSpace creates a new space.
func (c *Client) CreateSpace(ctx context.Context, name, spaceType string) (domain.Space, error) {
	in := map[string]string{"name": name, "type": spaceType}
	var out domain.Space
	err := c.call(ctx, http.MethodPost, "/spaces", in, &out)
	return out, err
}

// DeleteSpace removes a space.
func (c *Client) DeleteSpace(ctx context.Context, name string) error {
	return c.call(ctx, http.MethodDelete, "/spaces/"+url.PathEscape(name), nil, nil)
}

// Snapshots lists the snapshots of a space.
func (c *Client) Snapshots(ctx context.Context, space string) ([]domain.Snapshot, error) {
	var out struct {
		Snapshots []domain.Snapshot `json:"snapshots"`
	}
	err := c.call(ctx, http.MethodGet, "/spaces/"+url.PathEscape(space)+"/snapshots", nil, &out)
	return out.Snapshots, err
}

// CreateSnapshot takes a snapshot. An empty name lets the server pick one.
func (c *Client) CreateSnapshot(ctx context.Context, space, name string) (domain.Snapshot, error) {
	in := map[string]string{}
	if name != "" {
		in["name"] = name
	}
	var out domain.Snapshot
	err := c.call(ctx, http.MethodPost, "/spaces/"+url.PathEscape(space)+"/snapshots", in, &out)
	return out, err
}

// DeleteSnapshot removes a snapshot.
func (c *Client) DeleteSnapshot(ctx context.Context, space, snapshot string) error {
	path := "/spaces/" + url.PathEscape(space) + "/snapshots/" + url.PathEscape(snapshot)
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

// SSHKeys lists the registered public keys.
func (c *Client) SSHKeys(ctx context.Context) ([]domain.SSHKey, error) {
	var out struct {
		Keys []domain.SSHKey `json:"ssh_keys"`
	}
	err := c.call(ctx, http.MethodGet, "/ssh_keys", nil, &out)
	return out.Keys, err
}

// AddSSHKey registers a public key.
func (c *Client) AddSSHKey(ctx context.Context, key string) (domain.SSHKey, error) {
	var out domain.SSHKey
	err := c.call(ctx, http.MethodPost, "/ssh_keys", map[string]string{"key": key}, &out)
	return out, err
}

// RemoveSSHKey unregisters a key.
func (c *Client) RemoveSSHKey(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/ssh_keys/"+url.PathEscape(id), nil, nil)
}

// ClearSSHKeys unregisters every key.
func (c *Client) ClearSSHKeys(ctx context.Context) error {
	return c.call(ctx, http.MethodDelete, "/ssh_keys", nil, nil)
}
