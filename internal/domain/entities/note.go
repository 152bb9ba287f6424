package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type NoteAuthor string

const (
	NoteAuthorCustomer NoteAuthor = "customer"
	NoteAuthorAdmin    NoteAuthor = "admin"
)

type NoteKind string

const (
	NoteKindInitial    NoteKind = "initial"
	NoteKindRefinement NoteKind = "refinement"
)

// NoteItem is one entry in a build's note ledger. The ledger is append/remove
// only; entries are never edited in place.
type NoteItem struct {
	NoteID    string     `json:"note_id"`
	CreatedAt time.Time  `json:"created_at"`
	Author    NoteAuthor `json:"author"`
	Kind      NoteKind   `json:"kind"`
	Text      string     `json:"text"`
}

// NoteSeparator joins compiled ledger entries. Fixed: the compiled string must
// be re-derivable from the ledger at any time.
const NoteSeparator = "\n\n"

// CompileNotes joins the ledger entries' trimmed texts in ledger order,
// skipping blank ones. An empty ledger falls back to the trimmed legacy
// single-string notes field unchanged. Pure function.
func CompileNotes(notesLog []NoteItem, legacyFallback string) string {
	if len(notesLog) == 0 {
		return strings.TrimSpace(legacyFallback)
	}
	parts := make([]string, 0, len(notesLog))
	for _, n := range notesLog {
		if t := strings.TrimSpace(n.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, NoteSeparator)
}

// EnsureLedger returns the build's note ledger, upgrading pre-ledger records
// on the way: when the ledger is empty but a legacy notes string exists, a
// single initial customer entry wrapping it is synthesized. The synthesized
// entry's id is derived from the build id, so repeated calls yield the same
// entry and never duplicate it.
func EnsureLedger(b Build) []NoteItem {
	if len(b.Project.NotesLog) > 0 {
		return cloneNotes(b.Project.NotesLog)
	}
	legacy := strings.TrimSpace(b.Project.Notes)
	if legacy == "" {
		return nil
	}
	return []NoteItem{{
		NoteID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte("legacy-note:"+b.ID)).String(),
		CreatedAt: b.CreatedAt,
		Author:    NoteAuthorCustomer,
		Kind:      NoteKindInitial,
		Text:      legacy,
	}}
}
