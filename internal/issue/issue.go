// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a diagnostic in the catalog.
type Id int

const (
	SourceNotFoundId Id = iota + 1
	SourceNotRecognizedId
	SourceInvalidId
	VagrantNotFoundId
	VagrantCommandFailedId
	VagrantTimeoutId
	GroupNameUnresolvedId
	CacheCorruptId
	ConfigLoadFailedId
)

// slugs maps catalog ids to the stable names used by `vaginv explain`.
var slugs = map[Id]string{
	SourceNotFoundId:       "source-not-found",
	SourceNotRecognizedId:  "source-not-recognized",
	SourceInvalidId:        "source-invalid",
	VagrantNotFoundId:      "vagrant-not-found",
	VagrantCommandFailedId: "vagrant-command-failed",
	VagrantTimeoutId:       "vagrant-timeout",
	GroupNameUnresolvedId:  "group-name-unresolved",
	CacheCorruptId:         "cache-corrupt",
	ConfigLoadFailedId:     "config-load-failed",
}

type (
	// MarkdownMsg is the rendered body of a catalog entry.
	MarkdownMsg string

	// HttpLink points at external documentation for an entry.
	HttpLink string

	// Issue is one entry in the diagnostic catalog. Entries are rendered
	// with glamour by `vaginv explain <name>`.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		extLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

// Slug returns the stable name for the issue.
func (i *Issue) Slug() string {
	return slugs[i.id]
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the entry's markdown with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.extLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	sourceNotFoundIssue = &Issue{
		id: SourceNotFoundId,
		mdMsg: `
# Inventory source not found

The inventory source file you pointed at does not exist or is not readable.

## Things you can try:
- Check the path for typos
- Make sure the file is readable by your user
~~~
$ vaginv validate ./vagrant.yml
~~~`,
	}

	sourceNotRecognizedIssue = &Issue{
		id: SourceNotRecognizedId,
		mdMsg: `
# Inventory source not recognized

Inventory source files must end in one of:

- ` + "`vagrant.yml` / `vagrant.yaml`" + `
- ` + "`dynamic.yml` / `dynamic.yaml`" + `

## Things you can try:
- Rename your source file to match one of the accepted suffixes
- Point vaginv at the right file:
~~~
$ vaginv list ./inventory.vagrant.yml
~~~`,
	}

	sourceInvalidIssue = &Issue{
		id: SourceInvalidId,
		mdMsg: `
# Invalid inventory source

The source file was found but its contents do not match the expected schema.

## Required shape:
~~~yaml
plugin: vagrant
paths:
  - path: "/path/to/vagrant/project"
    group_name: "optional-explicit-name"
    additional_vars:
      - key: some_key
        val: some_val
get_host_only_ips: false
cache: false
~~~

## Things you can try:
- Check the schema error above for the exact field
- Make sure 'plugin' is exactly "vagrant"
- Make sure 'paths' is a list of mappings`,
	}

	vagrantNotFoundIssue = &Issue{
		id: VagrantNotFoundId,
		mdMsg: `
# Vagrant executable not found

vaginv shells out to the vagrant CLI and could not locate it.

## Things you can try:
- Install Vagrant and make sure it is on your PATH
- Point vaginv at a specific binary in your config:
~~~cue
vagrant_binary: "/opt/vagrant/bin/vagrant"
~~~`,
	}

	vagrantCommandFailedIssue = &Issue{
		id: VagrantCommandFailedId,
		mdMsg: `
# Vagrant command failed

A vagrant invocation other than 'vagrant ssh-config' exited non-zero.
Failures of 'vagrant ssh-config' only skip the affected path; any other
failure aborts inventory generation.

## Things you can try:
- Run the failing command by hand in the project directory
- Check that the Vagrant environment is healthy:
~~~
$ vagrant status
~~~`,
	}

	vagrantTimeoutIssue = &Issue{
		id: VagrantTimeoutId,
		mdMsg: `
# Vagrant command timed out

The vagrant CLI did not respond within the configured timeout
(15 seconds by default).

## Things you can try:
- Run the command by hand; a hung provider plugin is the usual cause
- Raise the timeout in your config:
~~~cue
timeout_secs: 60
~~~`,
	}

	groupNameUnresolvedIssue = &Issue{
		id: GroupNameUnresolvedId,
		mdMsg: `
# Could not resolve a group name

Every configured path needs a group name, either set explicitly via
'group_name' or derived from the last segment of 'path'.

## Things you can try:
- Set an explicit group name:
~~~yaml
paths:
  - path: "/vagrant/k8s-demo"
    group_name: "kubernetes"
~~~
- Check that 'path' is not empty or a bare "/"`,
	}

	cacheCorruptIssue = &Issue{
		id: CacheCorruptId,
		mdMsg: `
# Cache entry could not be read

A stored aggregation result exists for this source but could not be decoded.

## Things you can try:
- Drop the stored results and recompute:
~~~
$ vaginv cache clear
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration

Your config.cue exists but could not be parsed or validated.

## Things you can try:
- Check the CUE syntax of ~/.config/vaginv/config.cue
- Compare against the known fields:
~~~cue
vagrant_binary: "vagrant"
timeout_secs:   15
cache: dir: "/custom/cache/dir"
ui: verbose: false
~~~`,
	}

	issues = map[Id]*Issue{
		sourceNotFoundIssue.Id():       sourceNotFoundIssue,
		sourceNotRecognizedIssue.Id():  sourceNotRecognizedIssue,
		sourceInvalidIssue.Id():        sourceInvalidIssue,
		vagrantNotFoundIssue.Id():      vagrantNotFoundIssue,
		vagrantCommandFailedIssue.Id(): vagrantCommandFailedIssue,
		vagrantTimeoutIssue.Id():       vagrantTimeoutIssue,
		groupNameUnresolvedIssue.Id():  groupNameUnresolvedIssue,
		cacheCorruptIssue.Id():         cacheCorruptIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
	}
)

// Values returns every catalog entry in unspecified order.
func Values() []*Issue {
	return maps.Values(issues)
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// Lookup finds a catalog entry by its stable slug name.
func Lookup(slug string) *Issue {
	for id, s := range slugs {
		if s == slug {
			return issues[id]
		}
	}
	return nil
}

// Slugs returns all known slugs, sorted.
func Slugs() []string {
	out := maps.Values(slugs)
	slices.Sort(out)
	return out
}
