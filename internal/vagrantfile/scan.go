// SPDX-License-Identifier: MPL-2.0

// Package vagrantfile scans Vagrantfile sources for the private-network IP
// addresses assigned to each defined VM.
//
// This is a deliberate best-effort heuristic, not a parser of the Vagrantfile
// language: it triggers on two line shapes and pairs a VM name with the first
// private-network line that follows it. Vagrantfiles that create several VMs
// from one shared definition block (loops, templated names) will pair names
// and addresses incorrectly. That imprecision is a known, documented limit of
// the feature and downstream behavior depends on it staying this way.
package vagrantfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

const (
	// DefaultName is the definition file expected in each configured path.
	DefaultName = "Vagrantfile"

	definePrefix   = "config.vm.define"
	privateNetHint = "vm.network :private_network, ip:"
)

// PrivateIPs maps VM names to private-network IP addresses, scoped to a
// single Vagrantfile. It is built once and never mutated after the scan.
type PrivateIPs map[string]string

// Scan reads Vagrantfile text and returns the name-to-IP mapping.
//
// A pair is recorded only when a pending name and a pending IP are both
// available; recording clears both, so a name only ever pairs with the IP
// line that follows it.
func Scan(r io.Reader) (PrivateIPs, error) {
	ips := PrivateIPs{}

	var pendingName, pendingIP string

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		trimmed := strings.TrimSpace(lines.Text())

		if strings.HasPrefix(trimmed, definePrefix) {
			pendingName = defineName(trimmed)
		}

		if strings.Contains(trimmed, privateNetHint) {
			pendingIP = addressAfterLastColon(trimmed)
		}

		if pendingName != "" && pendingIP != "" {
			ips[pendingName] = pendingIP
			pendingName, pendingIP = "", ""
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return ips, nil
}

// ScanFile is a convenience wrapper over Scan for an on-disk Vagrantfile.
func ScanFile(path string) (PrivateIPs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f)
}

// defineName extracts the VM name from a `config.vm.define` line: the first
// comma-delimited segment's last whitespace token, stripped of quotes.
func defineName(line string) string {
	segment := strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return ""
	}
	return stripQuotes(fields[len(fields)-1])
}

// addressAfterLastColon extracts the IP from a private-network line: the
// text after the last colon, trimmed and stripped of quotes.
func addressAfterLastColon(line string) string {
	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		return ""
	}
	return stripQuotes(strings.TrimSpace(line[idx+1:]))
}

// stripQuotes removes surrounding single or double quote characters.
func stripQuotes(s string) string {
	s = strings.Trim(s, "'")
	return strings.Trim(s, `"`)
}
