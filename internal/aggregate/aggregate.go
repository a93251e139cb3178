// SPDX-License-Identifier: MPL-2.0

// Package aggregate walks the configured Vagrant project paths and turns
// each one into a named inventory group.
//
// Per-path failures are not all equal: a path without a Vagrantfile or whose
// `vagrant ssh-config` fails only skips that path with a warning, because it
// usually means "no running VMs here". A vagrant CLI that cannot even report
// its version, or a group name that cannot be resolved, aborts the run.
package aggregate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"vaginv-cli/internal/inventory"
	"vaginv-cli/internal/issue"
	"vaginv-cli/internal/source"
	"vaginv-cli/internal/sshconf"
	"vaginv-cli/internal/vagrant"
	"vaginv-cli/internal/vagrantfile"
)

// Aggregator runs the extraction pipeline over a list of configured paths.
type Aggregator struct {
	runner vagrant.Runner
	logger *log.Logger

	// scanPrivateIPs enables the Vagrantfile private-network scan, whose
	// addresses replace VM names as inventory identities.
	scanPrivateIPs bool
}

// New returns an Aggregator. A nil logger falls back to the package default.
func New(runner vagrant.Runner, logger *log.Logger, scanPrivateIPs bool) *Aggregator {
	if logger == nil {
		logger = log.Default()
	}
	return &Aggregator{runner: runner, logger: logger, scanPrivateIPs: scanPrivateIPs}
}

// Run probes the vagrant CLI once, then aggregates every configured path in
// order. Skipped paths leave no group behind; group order otherwise matches
// path order.
func (a *Aggregator) Run(ctx context.Context, paths []source.PathSpec) (inventory.Result, error) {
	version, err := a.runner.Run(ctx, "", "")
	if err != nil {
		return inventory.Result{}, issue.NewErrorContext().
			WithOperation("probing the vagrant CLI").
			WithSuggestion("Make sure vagrant is installed and on your PATH").
			WithSuggestion("Run 'vaginv explain vagrant-not-found' for details").
			Wrap(err).
			BuildError()
	}
	a.logger.Debug("vagrant CLI probe succeeded", "version", strings.TrimSpace(version))

	tracker := inventory.NewNameTracker()
	var groups []inventory.Group
	for _, spec := range paths {
		group, ok, err := a.aggregatePath(ctx, tracker, spec)
		if err != nil {
			return inventory.Result{}, err
		}
		if !ok {
			continue
		}
		groups = append(groups, group)
	}
	return inventory.Result{Groups: groups}, nil
}

// aggregatePath produces the group for one configured path. ok is false when
// the path was skipped; an error aborts the whole run.
func (a *Aggregator) aggregatePath(ctx context.Context, tracker *inventory.NameTracker, spec source.PathSpec) (inventory.Group, bool, error) {
	if spec.Path == "" {
		a.logger.Warn("skipping path entry with no path set")
		return inventory.Group{}, false, nil
	}

	vagrantfilePath := filepath.Join(spec.Path, vagrantfile.DefaultName)
	if _, err := os.Stat(vagrantfilePath); err != nil {
		a.logger.Warn("skipping path without a Vagrantfile", "path", spec.Path)
		return inventory.Group{}, false, nil
	}

	name, err := tracker.Assign(spec.GroupName, spec.Path)
	if err != nil {
		return inventory.Group{}, false, issue.NewErrorContext().
			WithOperation("resolving group name").
			WithResource(spec.Path).
			WithSuggestion("Set an explicit group_name for this path").
			WithSuggestion("Run 'vaginv explain group-name-unresolved' for details").
			Wrap(err).
			BuildError()
	}

	var ips vagrantfile.PrivateIPs
	if a.scanPrivateIPs {
		ips, err = vagrantfile.ScanFile(vagrantfilePath)
		if err != nil {
			return inventory.Group{}, false, fmt.Errorf("scanning %q for private networks: %w", vagrantfilePath, err)
		}
	}

	out, err := a.runner.Run(ctx, vagrant.SSHConfigArgs, spec.Path)
	if err != nil {
		a.logger.Warn("vagrant ssh-config failed, skipping path", "path", spec.Path, "err", err)
		return inventory.Group{}, false, nil
	}

	records, err := sshconf.Parse(strings.NewReader(out))
	if err != nil {
		return inventory.Group{}, false, fmt.Errorf("parsing ssh-config output for %q: %w", spec.Path, err)
	}

	vms := make([]inventory.Record, 0, len(records))
	for _, r := range records {
		rec := inventory.Record{
			Name:       r.Name,
			Host:       r.Host,
			User:       r.User,
			Port:       r.Port,
			PrivateKey: r.IdentityFile,
		}
		if ip, found := ips[rec.Name]; found {
			rec.HostOnlyIP = ip
		}
		vms = append(vms, rec)
	}

	a.logger.Debug("aggregated path", "path", spec.Path, "group", name, "vms", len(vms))
	return inventory.Group{Name: name, Vars: spec.AdditionalVars, VMs: vms}, true, nil
}
