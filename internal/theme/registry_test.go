package theme

import "testing"

func TestForReturnsRequestedTheme(t *testing.T) {
	for _, id := range IDs() {
		if got := For(id).ID; got != id {
			t.Fatalf("For(%q).ID=%q, want %q", id, got, id)
		}
	}
}

func TestForUnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []ID{"", "vaporwave", "NEON_GRID"} {
		if got := For(id).ID; got != DefaultID {
			t.Fatalf("For(%q).ID=%q, want %q", id, got, DefaultID)
		}
	}
	if Default().ID != DefaultID {
		t.Fatalf("Default().ID=%q, want %q", Default().ID, DefaultID)
	}
}

func TestAllKeepsDeclarationOrder(t *testing.T) {
	want := []ID{NeonGrid, Synthwave, Netrunner, ChromeNoir, Glitch}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("len(All())=%d, want %d", len(all), len(want))
	}
	for i := range want {
		if all[i].ID != want[i] {
			t.Fatalf("All()[%d]=%q, want %q", i, all[i].ID, want[i])
		}
	}

	all[0] = Descriptor{ID: "mutated"}
	if All()[0].ID != NeonGrid {
		t.Fatalf("All() exposed internal slice")
	}
}

func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		want ID
		ok   bool
	}{
		{"neon_grid", NeonGrid, true},
		{" Chrome-Noir ", ChromeNoir, true},
		{"GLITCH", Glitch, true},
		{"chrome noir", ChromeNoir, true},
		{"", DefaultID, false},
		{"tron", DefaultID, false},
	}
	for _, tc := range cases {
		got, ok := ParseID(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseID(%q)=(%q,%v), want (%q,%v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEveryThemeStylesEveryPriority(t *testing.T) {
	for _, d := range All() {
		if d.Name == "" || d.Description == "" {
			t.Fatalf("theme %q missing name/description", d.ID)
		}
		if d.Fonts.Title == "" || d.Fonts.Body == "" || d.Fonts.Mono == "" {
			t.Fatalf("theme %q missing fonts", d.ID)
		}
		for _, p := range Priorities() {
			tag := d.Tag(p)
			if tag.Text == "" {
				t.Fatalf("theme %q priority %s: empty tag text", d.ID, p)
			}
			if tag.Render() == "" {
				t.Fatalf("theme %q priority %s: empty render", d.ID, p)
			}
		}
		if !d.Tag(PriorityCritical).Glow {
			t.Fatalf("theme %q: critical tag should glow", d.ID)
		}
		if d.Tag(PriorityLow).Glow {
			t.Fatalf("theme %q: low tag should not glow", d.ID)
		}
	}
}

func TestTagForegroundOverride(t *testing.T) {
	white := ParseColor("#fff")
	tag := TagStyle{Text: "x", Color: ParseColor("#ff0000"), TextColor: &white}
	if got := tag.Foreground(); got != "#ffffff" {
		t.Fatalf("Foreground()=%q, want #ffffff", got)
	}
	tag.TextColor = nil
	if got := tag.Foreground(); got != "#ff0000" {
		t.Fatalf("Foreground()=%q, want #ff0000", got)
	}
}

func TestZeroDescriptorTagUsesPlainSet(t *testing.T) {
	var d Descriptor
	if got := d.Tag(PriorityHigh).Text; got != "HIGH" {
		t.Fatalf("Tag(high).Text=%q, want HIGH", got)
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]Priority{
		"low":      PriorityLow,
		" HIGH ":   PriorityHigh,
		"urgent":   PriorityCritical,
		"critical": PriorityCritical,
		"":         PriorityMedium,
		"whatever": PriorityMedium,
	}
	for in, want := range cases {
		if got := ParsePriority(in); got != want {
			t.Fatalf("ParsePriority(%q)=%s, want %s", in, got, want)
		}
	}
}

func TestAmbientDivider(t *testing.T) {
	if got := (Ambient{}).Divider(0); got != "" {
		t.Fatalf("Divider(0)=%q, want empty", got)
	}
	if got := (Ambient{Glitch: 0.9, Rain: true}).Divider(3); got != "▚▚▚" {
		t.Fatalf("glitch divider=%q", got)
	}
	if got := (Ambient{}).Divider(2); got != "──" {
		t.Fatalf("plain divider=%q", got)
	}
}
