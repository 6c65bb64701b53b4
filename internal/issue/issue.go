// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known failure class with a renderable issue card.
type Id int

const (
	HandlerNotFoundId Id = iota + 1
	MimeappsParseErrorId
	ConfigLoadFailedId
	AliasDatabaseUnavailableId
	SelectorFailedId
)

// Issue is a Markdown help card for a known failure class, rendered in the
// terminal when the failure occurs interactively.
type Issue struct {
	id    Id
	mdMsg string
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() string {
	return i.mdMsg
}

// Render renders the issue card with the given glamour style ("auto" picks
// a style matching the terminal background).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.mdMsg, stylePath)
}

// render is swapped out by tests.
var render = glamour.Render

var (
	handlerNotFoundIssue = &Issue{
		id: HandlerNotFoundId,
		mdMsg: `
# Handler not found

The handler you named does not match any installed desktop entry.

## Things you can try
- List the desktop entries installed on your system:
~~~
$ ls /usr/share/applications ~/.local/share/applications
~~~
- Use the full entry file name, including the extension:
~~~
$ mimectl set audio/flac mpv.desktop
~~~`,
	}

	mimeappsParseErrorIssue = &Issue{
		id: MimeappsParseErrorId,
		mdMsg: `
# Could not parse mimeapps.list

Your association file contains a line that is neither a section header nor a
` + "`key=value`" + ` property.

## Things you can try
- Open the file and fix or delete the reported line:
~~~
$ $EDITOR ~/.config/mimeapps.list
~~~
- Valid lines look like:
~~~
[Default Applications]
audio/flac=mpv.desktop;
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Could not load mimectl's configuration

The tool configuration could not be read.

## Things you can try
- Check the file for TOML syntax errors:
~~~
$ $EDITOR ~/.config/mimectl/config.toml
~~~
- Delete it to regenerate the defaults on the next run.`,
	}

	aliasDatabaseUnavailableIssue = &Issue{
		id: AliasDatabaseUnavailableId,
		mdMsg: `
# Shared MIME database unavailable

The system alias tables could not be read. mimectl keeps working, but MIME
types are no longer canonicalized, so entries stored under an alias name may
not be found under the canonical one.

## Things you can try
- Install or rebuild the shared MIME database:
~~~
$ update-mime-database /usr/share/mime
~~~`,
	}

	selectorFailedIssue = &Issue{
		id: SelectorFailedId,
		mdMsg: `
# Selector command failed

The configured selector could not be started or returned no choice.

## Things you can try
- Check the selector command in your configuration:
~~~
$ grep selector ~/.config/mimectl/config.toml
~~~
- Make sure the selector binary (e.g. rofi) is installed.`,
	}

	issues = map[Id]*Issue{
		HandlerNotFoundId:          handlerNotFoundIssue,
		MimeappsParseErrorId:       mimeappsParseErrorIssue,
		ConfigLoadFailedId:         configLoadFailedIssue,
		AliasDatabaseUnavailableId: aliasDatabaseUnavailableIssue,
		SelectorFailedId:           selectorFailedIssue,
	}
)

// Lookup returns the issue card for id, or nil if none is registered.
func Lookup(id Id) *Issue {
	return issues[id]
}

// Ids returns all registered issue ids in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
