// SPDX-License-Identifier: MPL-2.0

package inventory

// Well-known group and host names synthesized on every run.
const (
	// RootGroup is the top-level group every discovered group nests under.
	RootGroup = "vagrant"
	// AllGroup is the universal Ansible group.
	AllGroup = "all"
	// LocalGroup always exists and carries the single loopback host.
	LocalGroup = "local"
	// LocalHost is the loopback host inside LocalGroup.
	LocalHost = "127.0.0.1"
)

// Fixed per-host variable names.
const (
	VarDisplayName = "ht_name"
	VarHost        = "ansible_host"
	VarPort        = "ansible_port"
	VarUser        = "ansible_user"
	VarPrivateKey  = "ansible_ssh_private_key_file"
	VarConnection  = "ansible_connection"
)

// Emit materializes an aggregation result into the sink: the root group,
// one group per Result entry with its vars and hosts, nesting under "all",
// and the synthetic "local" group.
//
// Var pairs missing a key or value are skipped without a warning; that
// leniency is part of the contract, not an oversight.
func Emit(res Result, sink Sink) {
	root := sink.AddGroup(RootGroup)

	for _, g := range res.Groups {
		grp := sink.AddGroup(g.Name)

		for _, v := range g.Vars {
			if v.Key == "" || v.Val == "" {
				continue
			}
			sink.SetVariable(grp, v.Key, v.Val)
		}

		for _, vm := range g.VMs {
			host := sink.AddHost(vm.InventoryHost(), grp)
			sink.SetVariable(host, VarDisplayName, vm.Name)
			sink.SetVariable(host, VarHost, vm.Host)
			sink.SetVariable(host, VarPort, vm.Port)
			sink.SetVariable(host, VarUser, vm.User)
			sink.SetVariable(host, VarPrivateKey, vm.PrivateKey)
		}

		sink.AddChild(root, grp)
	}

	sink.AddChild(AllGroup, root)

	local := sink.AddGroup(LocalGroup)
	localHost := sink.AddHost(LocalHost, local)
	sink.SetVariable(localHost, VarConnection, "local")
	sink.SetVariable(localHost, VarDisplayName, "local")
	sink.AddChild(AllGroup, local)
}
