package domain

import "time"

// Space is a storage area owned by the authenticated account.
type Space struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	SnapshotCount int    `json:"snapshots"`
	SizeBytes     int64  `json:"size"`
}

// Snapshot is a point-in-time copy of a space.
type Snapshot struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SSHKey is a public key registered for SFTP/rsync access.
type SSHKey struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Fingerprint string `json:"fingerprint"`
}

// Profile describes the authenticated account.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	QuotaGB   int    `json:"quota_gb"`
	UsedBytes int64  `json:"used_bytes"`
}

// Credentials are the persisted login details. Token is empty when
// the user has never logged in or has logged out.
type Credentials struct {
	Username string
	Token    string
}

// IsEmpty reports whether no usable credentials are present.
func (c Credentials) IsEmpty() bool {
	return c.Username == "" || c.Token == ""
}

// Plugin is an installed extension recorded in the plugin catalog.
type Plugin struct {
	ID          string
	Name        string
	Version     string
	Source      string
	Path        string
	Enabled     bool
	InstalledAt string
}
