package entities

import "time"

// EstimateBreakdown is a pricing snapshot attached to versions and completed
// render jobs. Public and internal breakdowns share the shape; the internal
// one carries raw costs before margin.
type EstimateBreakdown struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Finish    float64 `json:"finish"`
	Overhead  float64 `json:"overhead"`
	Total     float64 `json:"total"`
	RangeLow  float64 `json:"range_low"`
	RangeHigh float64 `json:"range_high"`
}

// InputsSnapshot is the frozen copy of the project specification at the
// moment a Version was created. Notes is the compiled ledger string, NotesLog
// the structured entries it was compiled from.
type InputsSnapshot struct {
	Type     string       `json:"type"`
	Dims     Dimensions   `json:"dims"`
	Options  BuildOptions `json:"options"`
	Notes    string       `json:"notes,omitempty"`
	NotesLog []NoteItem   `json:"notes_log,omitempty"`
}

// Version is an immutable snapshot created every time the project inputs or
// notes change. InputsSnapshot never changes after creation; any further edit
// produces a new Version at index 0 of Build.Versions. Render job status is
// the one field that advances after creation (queued -> rendering -> terminal).
type Version struct {
	VersionID             string             `json:"version_id"`
	CreatedAt             time.Time          `json:"created_at"`
	CustomerChangeRequest string             `json:"customer_change_request,omitempty"`
	InputsSnapshot        InputsSnapshot     `json:"inputs_snapshot"`
	Renders               []RenderJob        `json:"renders"`
	EstimatePublic        *EstimateBreakdown `json:"estimate_public,omitempty"`
	EstimateInternal      *EstimateBreakdown `json:"estimate_internal,omitempty"`
}

// Clone returns a deep copy of the version.
func (v Version) Clone() Version {
	out := v
	out.InputsSnapshot.NotesLog = cloneNotes(v.InputsSnapshot.NotesLog)
	if v.Renders != nil {
		out.Renders = make([]RenderJob, len(v.Renders))
		copy(out.Renders, v.Renders)
	}
	if v.EstimatePublic != nil {
		e := *v.EstimatePublic
		out.EstimatePublic = &e
	}
	if v.EstimateInternal != nil {
		e := *v.EstimateInternal
		out.EstimateInternal = &e
	}
	return out
}
