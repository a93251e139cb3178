// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Format selects the serialization of a rendered inventory document.
type Format string

const (
	// FormatJSON is the default and what Ansible's script protocol reads.
	FormatJSON Format = "json"
	// FormatYAML is a human-oriented rendering of the same document.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = fmt.Errorf("unknown inventory format")

// ListDocument builds the Ansible `--list` document: one entry per group
// with hosts, vars, and children, plus `_meta.hostvars` so Ansible never
// calls back per host.
func (m *Memory) ListDocument() map[string]any {
	doc := make(map[string]any, len(m.groupOrder)+1)

	for _, name := range m.groupOrder {
		g := m.groups[name]
		entry := map[string]any{}
		if len(g.hosts) > 0 {
			entry["hosts"] = append([]string(nil), g.hosts...)
		}
		if len(g.vars) > 0 {
			vars := make(map[string]any, len(g.vars))
			for k, v := range g.vars {
				vars[k] = v
			}
			entry["vars"] = vars
		}
		if len(g.children) > 0 {
			entry["children"] = append([]string(nil), g.children...)
		}
		doc[name] = entry
	}

	hostvars := make(map[string]any, len(m.hostOrder))
	for _, name := range m.hostOrder {
		hostvars[name] = m.HostVars(name)
	}
	doc["_meta"] = map[string]any{"hostvars": hostvars}

	return doc
}

// HostDocument builds the Ansible `--host` document for one host. Unknown
// hosts yield an empty document, matching the script protocol.
func (m *Memory) HostDocument(name string) map[string]any {
	vars := m.HostVars(name)
	if vars == nil {
		return map[string]any{}
	}
	return vars
}

// RenderList serializes the `--list` document in the given format.
func (m *Memory) RenderList(format Format) ([]byte, error) {
	return render(m.ListDocument(), format)
}

// RenderHost serializes the `--host` document in the given format.
func (m *Memory) RenderHost(name string, format Format) ([]byte, error) {
	return render(m.HostDocument(name), format)
}

func render(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
