// Package codec converts a Board between its durable form, the share-link
// token, and the interchange file. All functions are pure; failures are
// reported as sentinel errors and callers pick the fallback policy.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/vborges/futura/internal/model"
)

var (
	// ErrCorruptRecord means a durable blob was present but unparsable.
	ErrCorruptRecord = errors.New("corrupt board record")
	// ErrInvalidToken means a share token could not be decoded.
	ErrInvalidToken = errors.New("invalid share token")
	// ErrInvalidFile means an interchange file is missing its required shape.
	ErrInvalidFile = errors.New("invalid board file")
)

// exportSuffix is appended to the derived download filename.
const exportSuffix = "_vision_board.json"

// EncodeDurable serializes a board to its canonical durable form. The form
// is the same JSON the original web client kept in localStorage.
func EncodeDurable(b model.Board) ([]byte, error) {
	data, err := json.Marshal(normalize(b))
	if err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return data, nil
}

// DecodeDurable parses a durable record. Callers treat ErrCorruptRecord as
// "discard and regenerate", never as a user-facing failure. A record that
// parses but carries no board id (`null`, `{}`, truncated writes) is also
// corrupt: surfacing it as a zero-value board would smuggle an id-less
// board into the editor instead of regenerating the default.
func DecodeDurable(data []byte) (model.Board, error) {
	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if b.ID == "" {
		return model.Board{}, fmt.Errorf("%w: missing board id", ErrCorruptRecord)
	}
	return normalize(b), nil
}

// EncodeShareToken produces a URL-safe, self-contained token embedding the
// full board. The token carries the board itself, not a reference: anyone
// holding it reconstructs the board without touching the stores.
func EncodeShareToken(b model.Board) (string, error) {
	data, err := EncodeDurable(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeShareToken is the inverse of EncodeShareToken. Tokens minted by the
// original client used the standard base64 alphabet, so both are accepted.
func DecodeShareToken(token string) (model.Board, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Board{}, ErrInvalidToken
	}
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		data, err = base64.StdEncoding.DecodeString(token)
	}
	if err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	b, err := DecodeDurable(data)
	if err != nil {
		return model.Board{}, fmt.Errorf("%w: bad payload", ErrInvalidToken)
	}
	return b, nil
}

// EncodeInterchangeFile renders the human-readable download form.
func EncodeInterchangeFile(b model.Board) ([]byte, error) {
	data, err := json.MarshalIndent(normalize(b), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode board file: %w", err)
	}
	return data, nil
}

// interchangeShape is the minimal validation surface for imported files:
// a recognizable title and an array-shaped sections field.
type interchangeShape struct {
	Title    *string         `json:"title"`
	Sections json.RawMessage `json:"sections"`
}

// DecodeInterchangeFile validates and parses an uploaded board file.
func DecodeInterchangeFile(data []byte) (model.Board, error) {
	var shape interchangeShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if shape.Title == nil {
		return model.Board{}, fmt.Errorf("%w: missing title", ErrInvalidFile)
	}
	trimmed := strings.TrimSpace(string(shape.Sections))
	if !strings.HasPrefix(trimmed, "[") {
		return model.Board{}, fmt.Errorf("%w: sections is not an array", ErrInvalidFile)
	}
	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return model.Board{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	return normalize(b), nil
}

// ApplyImport merges an imported board into the existing one. The existing
// board's id and share slug survive: import never mints a new identity or
// breaks a previously shared link.
func ApplyImport(existing, imported model.Board) model.Board {
	imported.ID = existing.ID
	imported.ShareSlug = existing.ShareSlug
	return normalize(imported)
}

// ExportFilename derives the download filename from the board title:
// whitespace runs collapse to underscores, letters are lower-cased, and
// the fixed suffix is appended.
func ExportFilename(title string) string {
	name := strings.ToLower(strings.Join(strings.Fields(title), "_"))
	if name == "" {
		name = "board"
	}
	return name + exportSuffix
}

// normalize replaces nil slices with empty ones so that encode/decode
// round-trips compare equal and templates can range without nil checks.
func normalize(b model.Board) model.Board {
	if b.Sections == nil {
		b.Sections = []model.Section{}
	}
	for i := range b.Sections {
		if b.Sections[i].Items == nil {
			b.Sections[i].Items = []model.Item{}
		}
	}
	return b
}
