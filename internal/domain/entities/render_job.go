package entities

import "time"

// RenderView is a camera angle for the render pipeline.
type RenderView string

const (
	RenderViewIso    RenderView = "iso"
	RenderViewFront  RenderView = "front"
	RenderViewTop    RenderView = "top"
	RenderViewDetail RenderView = "detail"
)

// StandardViews are the render views queued for an initial draft version.
// DetailViews additionally includes the close-up queued for every revision
// after the draft.
func StandardViews() []RenderView {
	return []RenderView{RenderViewIso, RenderViewFront, RenderViewTop}
}

func DetailViews() []RenderView {
	return []RenderView{RenderViewIso, RenderViewFront, RenderViewTop, RenderViewDetail}
}

// RenderStatus is the render job state machine. A job only moves forward:
// queued -> rendering -> complete | failed. Failed is terminal; a fresh
// attempt requires a new Version (which regenerates the whole job set).
type RenderStatus string

const (
	RenderStatusQueued    RenderStatus = "queued"
	RenderStatusRendering RenderStatus = "rendering"
	RenderStatusComplete  RenderStatus = "complete"
	RenderStatusFailed    RenderStatus = "failed"
)

// RenderJob is one unit of render work owned by exactly one Version. Jobs are
// created in bulk (all queued) at version creation and never deleted.
type RenderJob struct {
	RenderID       string             `json:"render_id"`
	View           RenderView         `json:"view"`
	Status         RenderStatus       `json:"status"`
	StartedAt      *time.Time         `json:"started_at,omitempty"`
	FinishedAt     *time.Time         `json:"finished_at,omitempty"`
	ImageDataURL   string             `json:"image_data_url,omitempty"`
	EstimatePublic *EstimateBreakdown `json:"estimate_public,omitempty"`
}
