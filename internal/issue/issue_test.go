// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	for _, id := range Ids() {
		iss := Lookup(id)
		if iss == nil {
			t.Fatalf("Lookup(%d) = nil", id)
		}
		if iss.Id() != id {
			t.Errorf("Lookup(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(iss.MarkdownMsg()) == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}

	if Lookup(Id(9999)) != nil {
		t.Error("Lookup of an unregistered id must return nil")
	}
}

func TestIdsSorted(t *testing.T) {
	ids := Ids()
	if len(ids) == 0 {
		t.Fatal("no issues registered")
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("Ids() not strictly ascending at %d: %v", i, ids)
		}
	}
}

func TestRenderUsesInjectedRenderer(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotStyle = stylePath
		return "rendered:" + in, nil
	}

	out, err := Lookup(HandlerNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want dark", gotStyle)
	}
	if !strings.HasPrefix(out, "rendered:") {
		t.Errorf("renderer not used: %q", out)
	}
}
