// SPDX-License-Identifier: MPL-2.0

package inventory

// Sink is the write-only contract of the host framework that receives the
// final inventory. Entities are addressed by name, matching Ansible's
// InventoryData API where add_group/add_host return the entity name and
// set_variable resolves groups before hosts.
type Sink interface {
	// AddGroup creates the group if absent and returns its name.
	AddGroup(name string) string

	// AddHost creates the host if absent, attaches it to group, and
	// returns the host name.
	AddHost(name, group string) string

	// SetVariable assigns a variable on the named entity. Groups shadow
	// hosts with the same name.
	SetVariable(entity, key string, val any)

	// AddChild nests child under parent, creating either group on demand.
	AddChild(parent, child string)
}

type (
	memGroup struct {
		hosts    []string
		hostSet  map[string]bool
		vars     map[string]any
		children []string
		childSet map[string]bool
	}

	// Memory is an in-process Sink. It records everything the emitter
	// writes, preserving insertion order, and renders the result as the
	// documents Ansible's script inventory protocol expects.
	Memory struct {
		groups     map[string]*memGroup
		groupOrder []string
		hostVars   map[string]map[string]any
		hostOrder  []string
	}
)

// NewMemory returns an empty in-process sink.
func NewMemory() *Memory {
	return &Memory{
		groups:   make(map[string]*memGroup),
		hostVars: make(map[string]map[string]any),
	}
}

func (m *Memory) group(name string) *memGroup {
	if g, ok := m.groups[name]; ok {
		return g
	}
	g := &memGroup{
		hostSet:  make(map[string]bool),
		vars:     make(map[string]any),
		childSet: make(map[string]bool),
	}
	m.groups[name] = g
	m.groupOrder = append(m.groupOrder, name)
	return g
}

// AddGroup implements Sink.
func (m *Memory) AddGroup(name string) string {
	m.group(name)
	return name
}

// AddHost implements Sink.
func (m *Memory) AddHost(name, group string) string {
	g := m.group(group)
	if !g.hostSet[name] {
		g.hostSet[name] = true
		g.hosts = append(g.hosts, name)
	}
	if _, ok := m.hostVars[name]; !ok {
		m.hostVars[name] = make(map[string]any)
		m.hostOrder = append(m.hostOrder, name)
	}
	return name
}

// SetVariable implements Sink.
func (m *Memory) SetVariable(entity, key string, val any) {
	if g, ok := m.groups[entity]; ok {
		g.vars[key] = val
		return
	}
	if vars, ok := m.hostVars[entity]; ok {
		vars[key] = val
	}
	// Variables on unknown entities are dropped; the emitter only writes
	// to names it created.
}

// AddChild implements Sink.
func (m *Memory) AddChild(parent, child string) {
	p := m.group(parent)
	m.group(child)
	if !p.childSet[child] {
		p.childSet[child] = true
		p.children = append(p.children, child)
	}
}

// Groups returns the group names in creation order.
func (m *Memory) Groups() []string {
	out := make([]string, len(m.groupOrder))
	copy(out, m.groupOrder)
	return out
}

// HostVars returns the variables of one host, or nil if unknown.
func (m *Memory) HostVars(name string) map[string]any {
	vars, ok := m.hostVars[name]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(vars))
	for k, v := range vars {
		out[k] = v
	}
	return out
}
