package board

import (
	"reflect"
	"testing"

	"github.com/vborges/futura/internal/theme"
)

func TestNewDefault(t *testing.T) {
	b := NewDefault()

	if b.ID == "" {
		t.Error("expected non-empty id")
	}
	if b.ShareSlug == "" {
		t.Error("expected non-empty share slug")
	}
	if len(b.ShareSlug) != 8 {
		t.Errorf("share slug length = %d, want 8", len(b.ShareSlug))
	}
	if b.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", b.Title, DefaultTitle)
	}
	if b.ThemeID != theme.DefaultID {
		t.Errorf("theme = %q, want %q", b.ThemeID, theme.DefaultID)
	}
	if len(b.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(b.Sections))
	}
	for _, s := range b.Sections {
		if s.ID == "" {
			t.Error("section missing id")
		}
		if len(s.Items) != 0 {
			t.Errorf("section %q should start empty, has %d items", s.Name, len(s.Items))
		}
	}
}

func TestNewDefaultIDsAreFresh(t *testing.T) {
	a, b := NewDefault(), NewDefault()
	if a.ID == b.ID {
		t.Error("two default boards share an id")
	}
	if a.ShareSlug == b.ShareSlug {
		t.Error("two default boards share a slug")
	}
}

func TestMutationsDoNotAliasInput(t *testing.T) {
	b := NewDefault()
	before := b.Sections[0].Name

	_ = RenameSection(b.Sections[0].ID, "changed")(b)
	if b.Sections[0].Name != before {
		t.Error("mutation modified its input board")
	}
}

func TestAddSection(t *testing.T) {
	b := NewDefault()
	out := AddSection("  Saúde  ")(b)
	if len(out.Sections) != 5 {
		t.Fatalf("sections = %d, want 5", len(out.Sections))
	}
	got := out.Sections[4]
	if got.Name != "Saúde" {
		t.Errorf("name = %q, want trimmed %q", got.Name, "Saúde")
	}
	if got.ID == "" {
		t.Error("new section missing id")
	}

	if same := AddSection("   ")(b); !reflect.DeepEqual(same, b) {
		t.Error("blank section name should be a no-op")
	}
}

func TestRemoveSectionCascades(t *testing.T) {
	b := NewDefault()
	sid := b.Sections[1].ID
	b = AddItem(sid, "https://example.com/a.png", "meta")(b)

	out := RemoveSection(sid)(b)
	if len(out.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(out.Sections))
	}
	if _, ok := FindSection(out, sid); ok {
		t.Error("removed section still present")
	}
}

func TestItemLifecycle(t *testing.T) {
	b := NewDefault()
	sid := b.Sections[0].ID

	b = AddItem(sid, "data:image/png;base64,AAAA", "primeira meta")(b)
	sec, _ := FindSection(b, sid)
	if len(sec.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(sec.Items))
	}
	itemID := sec.Items[0].ID
	if itemID == "" {
		t.Fatal("item missing id")
	}

	b = UpdateItemCaption(sid, itemID, "meta revisada")(b)
	sec, _ = FindSection(b, sid)
	if sec.Items[0].Caption != "meta revisada" {
		t.Errorf("caption = %q, want %q", sec.Items[0].Caption, "meta revisada")
	}

	b = RemoveItem(sid, itemID)(b)
	sec, _ = FindSection(b, sid)
	if len(sec.Items) != 0 {
		t.Errorf("items = %d after remove, want 0", len(sec.Items))
	}
}

func TestAddItemCappedRefusesWhenFull(t *testing.T) {
	b := NewDefault()
	sid := b.Sections[0].ID

	for i := 0; i < 3; i++ {
		added := false
		b = AddItemCapped(sid, "https://example.com/i.png", "", 3, &added)(b)
		if !added {
			t.Fatalf("item %d refused below the cap", i+1)
		}
	}

	added := false
	b = AddItemCapped(sid, "https://example.com/i.png", "", 3, &added)(b)
	if added {
		t.Error("added reported true at the cap")
	}
	if got := len(b.Sections[0].Items); got != 3 {
		t.Errorf("items = %d, want 3", got)
	}
}

func TestRenameAndTheme(t *testing.T) {
	b := NewDefault()
	b = Rename("Visão 2027")(b)
	if b.Title != "Visão 2027" {
		t.Errorf("title = %q", b.Title)
	}
	b = SetTheme("galaxy")(b)
	if b.ThemeID != "galaxy" {
		t.Errorf("theme = %q", b.ThemeID)
	}
}

func TestUnknownSectionIsNoOp(t *testing.T) {
	b := NewDefault()
	out := AddItem("missing", "u", "c")(b)
	if !reflect.DeepEqual(out, b) {
		t.Error("adding to unknown section should change nothing")
	}
}

func TestSetPublic(t *testing.T) {
	b := NewDefault()
	b = SetPublic(true)(b)
	if !b.IsPublic {
		t.Error("board not public after SetPublic(true)")
	}
	b = SetPublic(false)(b)
	if b.IsPublic {
		t.Error("board still public after SetPublic(false)")
	}
}

func TestApplyTemplateKeepsIdentity(t *testing.T) {
	b := NewDefault()
	b = SetPublic(true)(b)
	tmpl := Presets()[0]

	out := ApplyTemplate(tmpl)(b)
	if out.ID != b.ID || out.ShareSlug != b.ShareSlug {
		t.Error("template application changed board identity")
	}
	if !out.IsPublic {
		t.Error("template application reset the sharing flag")
	}
	if out.Title != tmpl.Title || out.ThemeID != tmpl.ThemeID {
		t.Errorf("title/theme = %q/%q, want template's", out.Title, out.ThemeID)
	}
	if len(out.Sections) != len(tmpl.Sections) {
		t.Fatalf("sections = %d, want %d", len(out.Sections), len(tmpl.Sections))
	}
	for i, s := range out.Sections {
		if s.ID == tmpl.Sections[i].ID {
			t.Error("template section id reused")
		}
		for j, it := range s.Items {
			if it.ID == tmpl.Sections[i].Items[j].ID {
				t.Error("template item id reused")
			}
			if it.Caption != tmpl.Sections[i].Items[j].Caption {
				t.Error("template item content lost")
			}
		}
	}
}

func TestPresets(t *testing.T) {
	ps := Presets()
	if len(ps) != 5 {
		t.Fatalf("presets = %d, want 5", len(ps))
	}
	for _, p := range ps {
		if p.Title == "" || len(p.Sections) == 0 {
			t.Errorf("preset %q incomplete", p.ID)
		}
		if !theme.Valid(p.ThemeID) {
			t.Errorf("preset %q has unknown theme %q", p.ID, p.ThemeID)
		}
	}
}
