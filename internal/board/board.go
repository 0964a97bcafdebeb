// Package board holds the pure transformations of a Board value. Every
// mutation takes a Board and returns a new Board; persistence is the
// caller's job (the store saves after each applied transformation).
package board

import (
	"strings"

	"github.com/google/uuid"
	"github.com/vborges/futura/internal/model"
	"github.com/vborges/futura/internal/theme"
)

// DefaultTitle is the title of a freshly materialized board.
const DefaultTitle = "Minha Realidade Futura"

// defaultSectionNames are the four starter areas of a new board.
var defaultSectionNames = []string{
	"Crescimento Pessoal",
	"Aventuras & Viagens",
	"Vida Financeira",
	"Criatividade & Hobbies",
}

// NewID mints a fresh globally unique identifier.
func NewID() string {
	return uuid.NewString()
}

// NewShareSlug mints a short stable identifier for share links.
func NewShareSlug() string {
	return uuid.NewString()[:8]
}

// NewDefault builds the starter board for an account: fixed title, four
// empty sections, default theme, fresh id and share slug.
func NewDefault() model.Board {
	sections := make([]model.Section, 0, len(defaultSectionNames))
	for _, name := range defaultSectionNames {
		sections = append(sections, model.Section{
			ID:    NewID(),
			Name:  name,
			Items: []model.Item{},
		})
	}
	return model.Board{
		ID:        NewID(),
		Title:     DefaultTitle,
		IsPublic:  false,
		ShareSlug: NewShareSlug(),
		ThemeID:   theme.DefaultID,
		Sections:  sections,
	}
}

// Mutation is a pure transformation of a board value.
type Mutation func(model.Board) model.Board

// clone deep-copies a board so mutations never alias the input's slices.
func clone(b model.Board) model.Board {
	out := b
	out.Sections = make([]model.Section, len(b.Sections))
	for i, s := range b.Sections {
		cs := s
		cs.Items = make([]model.Item, len(s.Items))
		copy(cs.Items, s.Items)
		out.Sections[i] = cs
	}
	return out
}

// Rename sets the board title.
func Rename(title string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		out.Title = title
		return out
	}
}

// SetTheme sets the theme id. Unknown ids are stored as given; rendering
// falls back to the default theme rather than failing.
func SetTheme(themeID string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		out.ThemeID = themeID
		return out
	}
}

// SetPublic toggles the sharing flag.
func SetPublic(public bool) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		out.IsPublic = public
		return out
	}
}

// ApplyTemplate replaces the board's content with a template's title, theme,
// and sections. The board keeps its own id, share slug, and sharing flag;
// template sections and items get fresh ids so two boards built from the
// same template never collide.
func ApplyTemplate(t model.Board) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		out.Title = t.Title
		out.ThemeID = t.ThemeID
		out.Sections = make([]model.Section, 0, len(t.Sections))
		for _, s := range t.Sections {
			ns := model.Section{ID: NewID(), Name: s.Name, Items: make([]model.Item, 0, len(s.Items))}
			for _, it := range s.Items {
				ns.Items = append(ns.Items, model.Item{ID: NewID(), ImageURL: it.ImageURL, Caption: it.Caption})
			}
			out.Sections = append(out.Sections, ns)
		}
		return out
	}
}

// AddSection appends a new empty section with a fresh id. The name is
// trimmed; a blank name leaves the board unchanged.
func AddSection(name string) Mutation {
	return func(b model.Board) model.Board {
		name := strings.TrimSpace(name)
		if name == "" {
			return b
		}
		out := clone(b)
		out.Sections = append(out.Sections, model.Section{
			ID:    NewID(),
			Name:  name,
			Items: []model.Item{},
		})
		return out
	}
}

// RenameSection sets the name of the section with the given id. Unknown
// ids leave the board unchanged.
func RenameSection(sectionID, name string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		for i := range out.Sections {
			if out.Sections[i].ID == sectionID {
				out.Sections[i].Name = name
			}
		}
		return out
	}
}

// RemoveSection deletes the section and, with it, all of its items.
func RemoveSection(sectionID string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		kept := out.Sections[:0]
		for _, s := range out.Sections {
			if s.ID != sectionID {
				kept = append(kept, s)
			}
		}
		out.Sections = kept
		return out
	}
}

// AddItem appends an item with a fresh id to the named section. The model
// places no bound on section size; the editing surface enforces its own
// admission rule through AddItemCapped.
func AddItem(sectionID, imageURL, caption string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		for i := range out.Sections {
			if out.Sections[i].ID == sectionID {
				out.Sections[i].Items = append(out.Sections[i].Items, model.Item{
					ID:       NewID(),
					ImageURL: imageURL,
					Caption:  caption,
				})
			}
		}
		return out
	}
}

// AddItemCapped is AddItem with an admission bound: a section already
// holding max items is left unchanged. The check and the append run inside
// one mutation, so concurrent adds serialized through the controller can
// never overfill a section. added reports whether the item went in.
func AddItemCapped(sectionID, imageURL, caption string, max int, added *bool) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		for i := range out.Sections {
			if out.Sections[i].ID != sectionID {
				continue
			}
			if len(out.Sections[i].Items) >= max {
				return out
			}
			out.Sections[i].Items = append(out.Sections[i].Items, model.Item{
				ID:       NewID(),
				ImageURL: imageURL,
				Caption:  caption,
			})
			*added = true
		}
		return out
	}
}

// UpdateItemCaption sets the caption of one item.
func UpdateItemCaption(sectionID, itemID, caption string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		for i := range out.Sections {
			if out.Sections[i].ID != sectionID {
				continue
			}
			for j := range out.Sections[i].Items {
				if out.Sections[i].Items[j].ID == itemID {
					out.Sections[i].Items[j].Caption = caption
				}
			}
		}
		return out
	}
}

// RemoveItem deletes one item from its section.
func RemoveItem(sectionID, itemID string) Mutation {
	return func(b model.Board) model.Board {
		out := clone(b)
		for i := range out.Sections {
			if out.Sections[i].ID != sectionID {
				continue
			}
			kept := out.Sections[i].Items[:0]
			for _, it := range out.Sections[i].Items {
				if it.ID != itemID {
					kept = append(kept, it)
				}
			}
			out.Sections[i].Items = kept
		}
		return out
	}
}

// FindSection returns the section with the given id.
func FindSection(b model.Board, sectionID string) (model.Section, bool) {
	for _, s := range b.Sections {
		if s.ID == sectionID {
			return s, true
		}
	}
	return model.Section{}, false
}
