package response

import (
	"time"

	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase"
)

type RenderJobResponse struct {
	RenderID       string                      `json:"render_id"`
	View           string                      `json:"view"`
	Status         string                      `json:"status"`
	StartedAt      *time.Time                  `json:"started_at,omitempty"`
	FinishedAt     *time.Time                  `json:"finished_at,omitempty"`
	ImageDataURL   string                      `json:"image_data_url,omitempty"`
	EstimatePublic *entities.EstimateBreakdown `json:"estimate_public,omitempty"`
}

type NoteItemResponse struct {
	NoteID    string    `json:"note_id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
}

type VersionResponse struct {
	VersionID             string                      `json:"version_id"`
	CreatedAt             time.Time                   `json:"created_at"`
	CustomerChangeRequest string                      `json:"customer_change_request,omitempty"`
	Type                  string                      `json:"type"`
	Dims                  entities.Dimensions         `json:"dims"`
	Options               entities.BuildOptions       `json:"options"`
	Notes                 string                      `json:"notes,omitempty"`
	NotesLog              []NoteItemResponse          `json:"notes_log,omitempty"`
	Renders               []RenderJobResponse         `json:"renders"`
	EstimatePublic        *entities.EstimateBreakdown `json:"estimate_public,omitempty"`
}

type BuildResponse struct {
	BuildID    string                `json:"build_id"`
	ID         string                `json:"id"`
	Status     string                `json:"status"`
	AccessCode string                `json:"access_code,omitempty"`
	Customer   entities.Customer     `json:"customer"`
	Type       string                `json:"type"`
	Dims       entities.Dimensions   `json:"dims"`
	Options    entities.BuildOptions `json:"options"`
	Notes      string                `json:"notes,omitempty"`
	NotesLog   []NoteItemResponse    `json:"notes_log,omitempty"`
	Versions   []VersionResponse     `json:"versions"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

func FromBuild(b entities.Build) BuildResponse {
	versions := make([]VersionResponse, 0, len(b.Versions))
	for _, v := range b.Versions {
		versions = append(versions, fromVersion(v))
	}
	return BuildResponse{
		BuildID:    b.ID,
		ID:         b.ID,
		Status:     string(b.Status),
		AccessCode: b.AccessCode,
		Customer:   b.Customer,
		Type:       b.Project.Type,
		Dims:       b.Project.Dims,
		Options:    b.Project.Options,
		Notes:      b.Project.Notes,
		NotesLog:   fromNotes(b.Project.NotesLog),
		Versions:   versions,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func FromBuilds(builds []entities.Build) []BuildResponse {
	out := make([]BuildResponse, 0, len(builds))
	for _, b := range builds {
		out = append(out, FromBuild(b))
	}
	return out
}

func fromVersion(v entities.Version) VersionResponse {
	renders := make([]RenderJobResponse, 0, len(v.Renders))
	for _, j := range v.Renders {
		renders = append(renders, RenderJobResponse{
			RenderID:       j.RenderID,
			View:           string(j.View),
			Status:         string(j.Status),
			StartedAt:      j.StartedAt,
			FinishedAt:     j.FinishedAt,
			ImageDataURL:   j.ImageDataURL,
			EstimatePublic: j.EstimatePublic,
		})
	}
	return VersionResponse{
		VersionID:             v.VersionID,
		CreatedAt:             v.CreatedAt,
		CustomerChangeRequest: v.CustomerChangeRequest,
		Type:                  v.InputsSnapshot.Type,
		Dims:                  v.InputsSnapshot.Dims,
		Options:               v.InputsSnapshot.Options,
		Notes:                 v.InputsSnapshot.Notes,
		NotesLog:              fromNotes(v.InputsSnapshot.NotesLog),
		Renders:               renders,
		EstimatePublic:        v.EstimatePublic,
	}
}

func fromNotes(notes []entities.NoteItem) []NoteItemResponse {
	if len(notes) == 0 {
		return nil
	}
	out := make([]NoteItemResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteItemResponse{
			NoteID:    n.NoteID,
			CreatedAt: n.CreatedAt,
			Author:    string(n.Author),
			Kind:      string(n.Kind),
			Text:      n.Text,
		})
	}
	return out
}

type SyncResponse struct {
	Enabled bool `json:"enabled"`
	Pulled  int  `json:"pulled"`
	Pushed  int  `json:"pushed"`
}

func FromSyncReport(r usecase.SyncReport) SyncResponse {
	return SyncResponse{Enabled: r.Enabled, Pulled: r.Pulled, Pushed: r.Pushed}
}

type RestoreResponse struct {
	Restored int `json:"restored"`
}

type BackupEventResponse struct {
	At     time.Time `json:"at"`
	Kind   string    `json:"kind"`
	Pulled int       `json:"pulled"`
	Pushed int       `json:"pushed"`
	Note   string    `json:"note,omitempty"`
}

func FromBackupEvents(events []entities.BackupEvent) []BackupEventResponse {
	out := make([]BackupEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, BackupEventResponse{
			At:     ev.At,
			Kind:   string(ev.Kind),
			Pulled: ev.Pulled,
			Pushed: ev.Pushed,
			Note:   ev.Note,
		})
	}
	return out
}
