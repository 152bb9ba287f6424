package entities

import "time"

// BuildStatus is the workflow label of a custom build request.
//
// Domain notes:
//   - Forward-moving in practice, but admin-settable: any status may be set
//     from any other. The only automatic transition is draft -> submitted.

type BuildStatus string

const (
	BuildStatusDraft     BuildStatus = "draft"
	BuildStatusSubmitted BuildStatus = "submitted"
	BuildStatusReviewing BuildStatus = "reviewing"
	BuildStatusQuoteSent BuildStatus = "quote_sent"
	BuildStatusApproved  BuildStatus = "approved"
	BuildStatusInBuild   BuildStatus = "in_build"
	BuildStatusComplete  BuildStatus = "complete"
)

// KnownBuildStatus reports whether s is one of the workflow labels.
func KnownBuildStatus(s BuildStatus) bool {
	switch s {
	case BuildStatusDraft, BuildStatusSubmitted, BuildStatusReviewing,
		BuildStatusQuoteSent, BuildStatusApproved, BuildStatusInBuild, BuildStatusComplete:
		return true
	}
	return false
}

// Customer is the contact snapshot captured at draft creation. Immutable.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// Dimensions of the piece, in inches.
type Dimensions struct {
	LengthIn float64 `json:"length_in"`
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

// BuildOptions are the material/finish choices for the piece.
type BuildOptions struct {
	WoodSpecies string `json:"wood_species"`
	Finish      string `json:"finish"`
	Joinery     string `json:"joinery"`
}

// Project is the live project specification on a Build. The revision engine
// reads it and forks it into new Version snapshots; NotesLog is the working
// copy of the note ledger, Notes is the compiled display string (cache, not
// source of truth).
type Project struct {
	Type     string       `json:"type"`
	Dims     Dimensions   `json:"dims"`
	Options  BuildOptions `json:"options"`
	Notes    string       `json:"notes,omitempty"`
	NotesLog []NoteItem   `json:"notes_log,omitempty"`
}

// Build is the root aggregate persisted by the record store.
//
// Storage model:
//   - Local: BadgerDB, key "build/{id}", JSON document.
//   - Remote mirror: DynamoDB, PK: id, doc attribute holds the JSON document.
//
// UpdatedAt is the authority for remote conflict resolution and must be
// refreshed on every mutation. Rev is the optimistic-concurrency token checked
// by the record store on upsert; it never travels to the remote mirror as a
// conflict key (the mirror is last-writer-wins on UpdatedAt).

type Build struct {
	ID         string      `json:"id"`
	Rev        int64       `json:"rev"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Status     BuildStatus `json:"status"`
	AccessCode string      `json:"access_code,omitempty"`
	Customer   Customer    `json:"customer"`
	Project    Project     `json:"project"`
	Versions   []Version   `json:"versions"`
}

// CurrentVersion returns a pointer to versions[0], or nil when the build has
// no versions. Versions are ordered newest first.
func (b *Build) CurrentVersion() *Version {
	if len(b.Versions) == 0 {
		return nil
	}
	return &b.Versions[0]
}

// Clone returns a deep copy of the build. Repositories hand out clones so
// callers can never mutate stored state in place, and the revision engine
// clones ledgers into snapshots to keep existing Versions immutable.
func (b Build) Clone() Build {
	out := b
	out.Project.NotesLog = cloneNotes(b.Project.NotesLog)
	if b.Versions != nil {
		out.Versions = make([]Version, len(b.Versions))
		for i := range b.Versions {
			out.Versions[i] = b.Versions[i].Clone()
		}
	}
	return out
}

func cloneNotes(in []NoteItem) []NoteItem {
	if in == nil {
		return nil
	}
	out := make([]NoteItem, len(in))
	copy(out, in)
	return out
}
