// SPDX-License-Identifier: MPL-2.0

package assoc

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"mimectl/internal/desktop"
	"mimectl/internal/mimetype"
)

// acceptAll resolves every handler name, standing in for a registry with
// everything installed.
type acceptAll struct{}

func (acceptAll) Resolve(name string) (desktop.Handler, error) {
	return desktop.Handler(name), nil
}

// rejectAll resolves nothing, standing in for a system with no applications.
type rejectAll struct{}

func (rejectAll) Resolve(name string) (desktop.Handler, error) {
	return "", &desktop.HandlerNotFoundError{Name: name}
}

func TestParseSections(t *testing.T) {
	input := `[Added Associations]
audio/flac=vlc.desktop;mpv.desktop;

[Removed Associations]
video/mp4=totem.desktop;

[Default Applications]
audio/flac=mpv.desktop;
text/html=firefox.desktop;
`
	tbl, err := Parse(strings.NewReader(input), acceptAll{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if got := tbl.Added["audio/flac"]; !reflect.DeepEqual(got, HandlerList{"vlc.desktop", "mpv.desktop"}) {
		t.Errorf("Added[audio/flac] = %v", got)
	}
	if got := tbl.Removed["video/mp4"]; !reflect.DeepEqual(got, HandlerList{"totem.desktop"}) {
		t.Errorf("Removed[video/mp4] = %v", got)
	}
	if got := tbl.Defaults["text/html"]; !reflect.DeepEqual(got, HandlerList{"firefox.desktop"}) {
		t.Errorf("Defaults[text/html] = %v", got)
	}
	if len(tbl.Defaults) != 2 {
		t.Errorf("len(Defaults) = %d, want 2", len(tbl.Defaults))
	}
}

func TestParseDeduplicatesPreservingFirst(t *testing.T) {
	input := "[Default Applications]\n" +
		"audio/flac=mpv.desktop;vlc.desktop;mpv.desktop;;vlc.desktop;\n"
	tbl, err := Parse(strings.NewReader(input), acceptAll{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := HandlerList{"mpv.desktop", "vlc.desktop"}
	if got := tbl.Defaults["audio/flac"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Defaults[audio/flac] = %v, want %v", got, want)
	}
}

func TestParseIgnoresUnknownAndInvalid(t *testing.T) {
	input := `# a comment
orphan=before-any-section.desktop;

[Some Future Section]
audio/flac=ignored.desktop;

[Default Applications]
not-a-mime-type=mpv.desktop;
audio/flac=mpv.desktop;
`
	tbl, err := Parse(strings.NewReader(input), acceptAll{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(tbl.Defaults) != 1 {
		t.Errorf("len(Defaults) = %d, want 1", len(tbl.Defaults))
	}
	if len(tbl.Added)+len(tbl.Removed) != 0 {
		t.Errorf("unexpected entries outside Defaults: %v %v", tbl.Added, tbl.Removed)
	}
}

func TestParseDropsUninstalledHandlers(t *testing.T) {
	input := "[Default Applications]\naudio/flac=gone.desktop;\n"
	tbl, err := Parse(strings.NewReader(input), rejectAll{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(tbl.Defaults) != 0 {
		t.Errorf("entries with no surviving handler must be dropped, got %v", tbl.Defaults)
	}
}

func TestParseMalformedLine(t *testing.T) {
	input := "[Default Applications]\nthis line is garbage\n"
	_, err := Parse(strings.NewReader(input), acceptAll{})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Parse error = %v, want ErrParse", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("ParseError = %+v, want line 2", pe)
	}
}

func TestSerializeSortedAndSectioned(t *testing.T) {
	tbl := NewTable()
	tbl.Defaults["video/mp4"] = HandlerList{"mpv.desktop"}
	tbl.Defaults["audio/flac"] = HandlerList{"mpv.desktop", "vlc.desktop"}
	tbl.Added["text/html"] = HandlerList{"firefox.desktop"}

	var b strings.Builder
	if err := tbl.Serialize(&b); err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}

	want := `[Added Associations]
text/html=firefox.desktop;

[Default Applications]
audio/flac=mpv.desktop;vlc.desktop;
video/mp4=mpv.desktop;
`
	if b.String() != want {
		t.Errorf("Serialize output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestSerializeOmitsEmptyRemoved(t *testing.T) {
	var b strings.Builder
	if err := NewTable().Serialize(&b); err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if strings.Contains(b.String(), "Removed Associations") {
		t.Errorf("empty Removed section must be omitted:\n%s", b.String())
	}

	tbl := NewTable()
	tbl.Removed["video/mp4"] = HandlerList{"totem.desktop"}
	b.Reset()
	if err := tbl.Serialize(&b); err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	if !strings.Contains(b.String(), "[Removed Associations]\nvideo/mp4=totem.desktop;\n") {
		t.Errorf("non-empty Removed section missing:\n%s", b.String())
	}
}

func TestRoundTrip(t *testing.T) {
	tbl := NewTable()
	tbl.Added["audio/flac"] = HandlerList{"vlc.desktop"}
	tbl.Removed["video/mp4"] = HandlerList{"totem.desktop"}
	tbl.Defaults["audio/flac"] = HandlerList{"mpv.desktop", "vlc.desktop"}
	tbl.Defaults["text/html"] = HandlerList{"firefox.desktop"}

	var b strings.Builder
	if err := tbl.Serialize(&b); err != nil {
		t.Fatalf("Serialize returned error: %v", err)
	}
	parsed, err := Parse(strings.NewReader(b.String()), acceptAll{})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !reflect.DeepEqual(parsed, tbl) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", parsed, tbl)
	}
}

func TestTableMutations(t *testing.T) {
	tbl := NewTable()

	tbl.AddHandler("audio/flac", "mpv.desktop")
	tbl.AddHandler("audio/flac", "vlc.desktop")
	tbl.AddHandler("audio/flac", "mpv.desktop") // already present, keeps position
	if got := tbl.Defaults["audio/flac"]; !reflect.DeepEqual(got, HandlerList{"mpv.desktop", "vlc.desktop"}) {
		t.Errorf("after AddHandler: %v", got)
	}

	tbl.SetHandler("audio/flac", "vlc.desktop")
	if got := tbl.Defaults["audio/flac"]; !reflect.DeepEqual(got, HandlerList{"vlc.desktop"}) {
		t.Errorf("after SetHandler: %v", got)
	}

	h, err := tbl.GetHandler("audio/flac")
	if err != nil || h != "vlc.desktop" {
		t.Errorf("GetHandler = %q, %v", h, err)
	}

	if !tbl.RemoveHandler("audio/flac") {
		t.Error("RemoveHandler should report a deletion")
	}
	if tbl.RemoveHandler("audio/flac") {
		t.Error("second RemoveHandler should be a no-op")
	}

	if _, err := tbl.GetHandler("audio/flac"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetHandler after removal = %v, want ErrNotFound", err)
	}
}

func TestGetHandlerCarriesType(t *testing.T) {
	_, err := NewTable().GetHandler("audio/ogg")
	var nh *NoHandlerError
	if !errors.As(err, &nh) {
		t.Fatalf("error = %v, want *NoHandlerError", err)
	}
	if nh.Type != mimetype.Type("audio/ogg") {
		t.Errorf("NoHandlerError.Type = %q", nh.Type)
	}
}
