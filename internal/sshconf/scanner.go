// SPDX-License-Identifier: MPL-2.0

package sshconf

import (
	"bufio"
	"io"
	"strings"
)

// Directive prefixes recognized while collecting a block. Matching is
// prefix-based on the trimmed line, mirroring how the vagrant output is
// actually shaped, which is why the User match needs an explicit guard
// against UserKnownHostsFile.
const (
	blockPrefix        = "Host"
	hostNamePrefix     = "HostName"
	userPrefix         = "User"
	portPrefix         = "Port"
	identityFilePrefix = "IdentityFile"

	knownHostsGuard = "UserKnownHostsFile"
)

type (
	// Record holds the SSH connection parameters collected from one
	// complete `vagrant ssh-config` block.
	Record struct {
		// Name is the VM name from the Host line.
		Name string
		// Host is the SSH-reachable address (HostName directive).
		Host string
		// User is the SSH login user.
		User string
		// Port is kept as an opaque string; it is never validated as a
		// port range here.
		Port string
		// IdentityFile is the path to the private key.
		IdentityFile string
	}

	// state is the scanner's position in the line machine.
	state int

	// Scanner yields complete Records lazily, in the order their blocks
	// appear in the input. Use it like bufio.Scanner:
	//
	//	s := sshconf.NewScanner(strings.NewReader(out))
	//	for s.Scan() {
	//	    rec := s.Record()
	//	    ...
	//	}
	//	if err := s.Err(); err != nil { ... }
	Scanner struct {
		lines   *bufio.Scanner
		st      state
		pending Record
		rec     Record
	}
)

const (
	seekingHost state = iota
	collecting
)

// complete reports whether all five mandatory fields have been observed.
func (r Record) complete() bool {
	return r.Name != "" && r.Host != "" && r.User != "" && r.Port != "" && r.IdentityFile != ""
}

// NewScanner returns a Scanner reading ssh-config text from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		lines: bufio.NewScanner(r),
		st:    seekingHost,
	}
}

// Scan advances to the next complete record. It returns false at end of
// input; a trailing partial block is discarded without error.
func (s *Scanner) Scan() bool {
	for s.lines.Scan() {
		if s.step(s.lines.Text()) {
			return true
		}
	}
	return false
}

// Record returns the record produced by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first error encountered while reading the input.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

// step feeds one line into the machine and reports whether a record was
// completed by it.
func (s *Scanner) step(line string) bool {
	// A block start is detected on the raw line: vagrant emits `Host` at
	// column zero and indents every directive, so the unindented prefix is
	// the block delimiter. Starting a new block drops any incomplete
	// pending state; a previously complete block was already emitted.
	if strings.HasPrefix(line, blockPrefix) {
		s.pending = Record{Name: lastField(line)}
		s.st = collecting
		return false
	}

	if s.st != collecting {
		return false
	}

	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, hostNamePrefix):
		s.pending.Host = lastField(trimmed)
	case strings.HasPrefix(trimmed, userPrefix) && !strings.Contains(trimmed, knownHostsGuard):
		s.pending.User = lastField(trimmed)
	case strings.HasPrefix(trimmed, portPrefix):
		s.pending.Port = lastField(trimmed)
	case strings.HasPrefix(trimmed, identityFilePrefix):
		s.pending.IdentityFile = lastField(trimmed)
	default:
		// Blank lines and unrecognized directives are ignored.
		return false
	}

	if s.pending.complete() {
		s.rec = s.pending
		s.pending = Record{}
		s.st = seekingHost
		return true
	}
	return false
}

// Parse scans the whole input and returns every complete record in block
// order. Incomplete blocks contribute nothing.
func Parse(r io.Reader) ([]Record, error) {
	s := NewScanner(r)
	var out []Record
	for s.Scan() {
		out = append(out, s.Record())
	}
	return out, s.Err()
}

// lastField returns the last whitespace-delimited token of line, or "" for
// a blank line.
func lastField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
