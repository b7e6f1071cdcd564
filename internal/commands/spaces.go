package commands

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/format"
	"github.com/strongspace/cli/internal/ui"
	"github.com/strongspace/cli/internal/usage"
)

// Space types accepted by spaces:create.
const (
	SpaceTypeNormal = "normal"
	SpaceTypeBackup = "backup"
)

// snapshotNameLayout names snapshots created without an explicit name.
const snapshotNameLayout = "20060102-150405"

// Spaces manages spaces and their snapshots.
type Spaces struct {
	command.Operations
	handler

	now func() time.Time
}

// NewSpaces is the factory for the spaces type.
func NewSpaces(args []string, session *domain.Session) command.Handler {
	h := &Spaces{handler: newHandler(args, session), now: time.Now}
	h.Operations = h.bind(map[string]operation{
		command.DefaultOperation: h.list,
		"create":                 h.create,
		"delete":                 h.delete,
		"snapshots":              h.snapshots,
		"create_snapshot":        h.createSnapshot,
		"delete_snapshot":        h.deleteSnapshot,
	})
	return h
}

func (h *Spaces) list(ctx context.Context, s *domain.Session) error {
	spaces, err := s.API.Spaces(ctx)
	if err != nil {
		return err
	}
	if len(spaces) == 0 {
		_, _ = s.Output.Println(s.Styler.Muted("You have no spaces."))
		return nil
	}

	rows := make([][]string, 0, len(spaces))
	for _, sp := range spaces {
		rows = append(rows, []string{sp.Name, sp.Type, strconv.Itoa(sp.SnapshotCount), format.Size(sp.SizeBytes)})
	}
	s.Output.Pager(ui.Table([]string{"NAME", "TYPE", "SNAPSHOTS", "SIZE"}, rows))
	return nil
}

func (h *Spaces) create(ctx context.Context, s *domain.Session) error {
	var spaceType string
	args, err := h.parseFlags("spaces:create", func(fs *pflag.FlagSet) {
		fs.StringVarP(&spaceType, "type", "t", SpaceTypeNormal, "space type (normal or backup)")
	})
	if err != nil {
		return err
	}
	if err := requireArgs(args, "name"); err != nil {
		return err
	}
	if spaceType != SpaceTypeNormal && spaceType != SpaceTypeBackup {
		return usage.InvalidFlag("--type=" + spaceType)
	}

	space, err := s.API.CreateSpace(ctx, args[0], spaceType)
	if err != nil {
		return err
	}
	_, _ = s.Output.Println(s.Styler.Success("Created " + space.Type + " space " + space.Name))
	return nil
}

func (h *Spaces) delete(ctx context.Context, s *domain.Session) error {
	args, err := h.parseFlags("spaces:delete", nil)
	if err != nil {
		return err
	}
	if err := requireArgs(args, "name"); err != nil {
		return err
	}
	if err := s.API.DeleteSpace(ctx, args[0]); err != nil {
		return err
	}
	_, _ = s.Output.Println("Deleted space " + args[0])
	return nil
}

func (h *Spaces) snapshots(ctx context.Context, s *domain.Session) error {
	args, err := h.parseFlags("spaces:snapshots", nil)
	if err != nil {
		return err
	}
	if err := requireArgs(args, "space"); err != nil {
		return err
	}

	snaps, err := s.API.Snapshots(ctx, args[0])
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		_, _ = s.Output.Println(s.Styler.Muted("No snapshots for " + args[0] + "."))
		return nil
	}

	f := format.New(s.Config.Get)
	rows := make([][]string, 0, len(snaps))
	for _, snap := range snaps {
		rows = append(rows, []string{snap.Name, f.DateTime(snap.CreatedAt), f.Ago(snap.CreatedAt)})
	}
	s.Output.Pager(ui.Table([]string{"NAME", "CREATED", ""}, rows))
	return nil
}

func (h *Spaces) createSnapshot(ctx context.Context, s *domain.Session) error {
	args, err := h.parseFlags("spaces:create_snapshot", nil)
	if err != nil {
		return err
	}
	if err := requireArgs(args, "space"); err != nil {
		return err
	}

	name := h.now().UTC().Format(snapshotNameLayout)
	if len(args) > 1 {
		name = args[1]
	}

	snap, err := s.API.CreateSnapshot(ctx, args[0], name)
	if err != nil {
		return err
	}
	_, _ = s.Output.Println(s.Styler.Success("Created snapshot " + args[0] + "@" + snap.Name))
	return nil
}

func (h *Spaces) deleteSnapshot(ctx context.Context, s *domain.Session) error {
	args, err := h.parseFlags("spaces:delete_snapshot", nil)
	if err != nil {
		return err
	}
	if err := requireArgs(args, "space", "snapshot"); err != nil {
		return err
	}
	if err := s.API.DeleteSnapshot(ctx, args[0], args[1]); err != nil {
		return err
	}
	_, _ = s.Output.Println("Deleted snapshot " + args[0] + "@" + args[1])
	return nil
}
