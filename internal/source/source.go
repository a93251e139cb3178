// SPDX-License-Identifier: MPL-2.0

// Package source loads and validates inventory source files.
//
// A source file is the YAML document a user points vaginv at: the plugin
// discriminator, the list of Vagrant project paths, and the feature toggles.
// Validation happens against an embedded CUE schema so schema violations are
// reported with precise field paths.
package source

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"vaginv-cli/internal/inventory"
	"vaginv-cli/internal/issue"
	"vaginv-cli/pkg/cueutil"
)

//go:embed source_schema.cue
var sourceSchema []byte

// PluginName is the discriminator value a source file must carry.
const PluginName = "vagrant"

// acceptedSuffixes are the file name endings this plugin claims.
var acceptedSuffixes = []string{
	"vagrant.yml",
	"vagrant.yaml",
	"dynamic.yml",
	"dynamic.yaml",
}

// ErrNotRecognized is returned for files whose name does not match any
// accepted suffix.
var ErrNotRecognized = errors.New("not a vagrant inventory source")

type (
	// PathSpec is one configured VM source directory plus its overrides.
	// It is read-only to the pipeline.
	PathSpec struct {
		Path           string          `json:"path"`
		GroupName      string          `json:"group_name"`
		AdditionalVars []inventory.Var `json:"additional_vars"`
	}

	// Options is the decoded content of a source file.
	Options struct {
		Plugin         string     `json:"plugin"`
		Paths          []PathSpec `json:"paths"`
		GetHostOnlyIPs bool       `json:"get_host_only_ips"`
		Cache          bool       `json:"cache"`
	}
)

// Accept reports whether path names a file this plugin claims as a source.
func Accept(path string) bool {
	for _, suffix := range acceptedSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Load reads, verifies, and schema-validates a source file.
func Load(path string) (*Options, error) {
	if !Accept(path) {
		return nil, issue.NewErrorContext().
			WithOperation("verify inventory source").
			WithResource(path).
			WithSuggestion("Source files must end in vagrant.yml, vagrant.yaml, dynamic.yml, or dynamic.yaml").
			Wrap(ErrNotRecognized).
			BuildError()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("read inventory source").
			WithResource(path).
			WithSuggestion("Check the path for typos").
			WithSuggestion("Make sure the file is readable").
			Wrap(err).
			BuildError()
	}

	res, err := cueutil.ParseYAML[Options](
		sourceSchema,
		data,
		"#Source",
		cueutil.WithFilename(filepath.Base(path)),
	)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate inventory source").
			WithResource(path).
			WithSuggestion("Make sure 'plugin' is exactly \"vagrant\"").
			WithSuggestion("Run 'vaginv explain source-invalid' for the expected shape").
			Wrap(err).
			BuildError()
	}

	opts := res.Value
	if len(opts.Paths) == 0 {
		return nil, issue.NewErrorContext().
			WithOperation("validate inventory source").
			WithResource(path).
			WithSuggestion("Add at least one entry under 'paths'").
			Wrap(errors.New("required option 'paths' is absent or empty")).
			BuildError()
	}
	return opts, nil
}
