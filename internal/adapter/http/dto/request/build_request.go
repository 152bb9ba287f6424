package request

import (
	"strings"

	"woodshop_builds/internal/domain/entities"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address"`
}

type DimensionsRequest struct {
	LengthIn float64 `json:"length_in" binding:"required,gt=0"`
	WidthIn  float64 `json:"width_in" binding:"required,gt=0"`
	HeightIn float64 `json:"height_in" binding:"required,gt=0"`
}

type OptionsRequest struct {
	WoodSpecies string `json:"wood_species"`
	Finish      string `json:"finish"`
	Joinery     string `json:"joinery"`
}

// CreateBuildRequest is the customer submission from the configurator.
type CreateBuildRequest struct {
	Customer CustomerRequest   `json:"customer" binding:"required"`
	Type     string            `json:"type" binding:"required"`
	Dims     DimensionsRequest `json:"dims" binding:"required"`
	Options  OptionsRequest    `json:"options"`
	Notes    string            `json:"notes"`
}

func (r CreateBuildRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:    strings.TrimSpace(r.Customer.Name),
		Phone:   strings.TrimSpace(r.Customer.Phone),
		Email:   strings.TrimSpace(r.Customer.Email),
		Address: strings.TrimSpace(r.Customer.Address),
	}
}

func (r CreateBuildRequest) ToDims() entities.Dimensions {
	return entities.Dimensions{LengthIn: r.Dims.LengthIn, WidthIn: r.Dims.WidthIn, HeightIn: r.Dims.HeightIn}
}

func (r CreateBuildRequest) ToOptions() entities.BuildOptions {
	return entities.BuildOptions{
		WoodSpecies: strings.TrimSpace(r.Options.WoodSpecies),
		Finish:      strings.TrimSpace(r.Options.Finish),
		Joinery:     strings.TrimSpace(r.Options.Joinery),
	}
}

// AddNoteRequest carries a customer refinement. Both fields optional at the
// binding level; "both blank" is rejected by the revision engine.
type AddNoteRequest struct {
	ChangeRequest string `json:"change_request"`
	NoteText      string `json:"note_text"`
}

// RemoveNoteRequest carries the optional admin reason recorded on the new
// version created by a note removal.
type RemoveNoteRequest struct {
	Reason string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EstimatePreviewRequest prices a spec without creating a build.
type EstimatePreviewRequest struct {
	Dims    DimensionsRequest `json:"dims" binding:"required"`
	Options OptionsRequest    `json:"options"`
}

func (r EstimatePreviewRequest) ToDims() entities.Dimensions {
	return entities.Dimensions{LengthIn: r.Dims.LengthIn, WidthIn: r.Dims.WidthIn, HeightIn: r.Dims.HeightIn}
}

func (r EstimatePreviewRequest) ToOptions() entities.BuildOptions {
	return entities.BuildOptions{
		WoodSpecies: strings.TrimSpace(r.Options.WoodSpecies),
		Finish:      strings.TrimSpace(r.Options.Finish),
		Joinery:     strings.TrimSpace(r.Options.Joinery),
	}
}
