// SPDX-License-Identifier: MPL-2.0

// Package inventory holds the grouped host data model produced by
// aggregation and the sink contract through which it is materialized into an
// Ansible-consumable form.
package inventory

type (
	// Var is one ordered key/value pair attached to a group. Pairs with an
	// empty key or value are dropped silently at emit time.
	Var struct {
		Key string `json:"key" yaml:"key"`
		Val string `json:"val" yaml:"val"`
	}

	// Record is one discovered VM with its resolved SSH connection
	// parameters. Records are only ever constructed from complete
	// ssh-config blocks; there is no partial state here.
	Record struct {
		Name       string `json:"name"`
		Host       string `json:"host"`
		User       string `json:"user"`
		Port       string `json:"port"`
		PrivateKey string `json:"key"`

		// HostOnlyIP is set only when the Vagrantfile scan found a
		// private-network address for this VM name.
		HostOnlyIP string `json:"host_only_ip,omitempty"`
	}

	// Group is one named collection of VMs, created once per configured
	// path and immutable afterwards.
	Group struct {
		Name string   `json:"group"`
		Vars []Var    `json:"vars,omitempty"`
		VMs  []Record `json:"vms"`
	}

	// Result is the ordered sequence of groups produced by one aggregation
	// run. It is exactly the unit that is cached and replayed.
	Result struct {
		Groups []Group `json:"groups"`
	}
)

// InventoryHost returns the identity under which this VM appears in the
// inventory: the host-only IP when present, otherwise the VM name. The
// SSH-reachable address is never the identity; it travels as ansible_host.
func (r Record) InventoryHost() string {
	if r.HostOnlyIP != "" {
		return r.HostOnlyIP
	}
	return r.Name
}
