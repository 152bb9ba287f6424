package handlers

import (
	"errors"
	"net/http"

	request "woodshop_builds/internal/adapter/http/dto/request"
	response "woodshop_builds/internal/adapter/http/dto/response"
	"woodshop_builds/internal/domain/entities"
	"woodshop_builds/internal/usecase"
	"woodshop_builds/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBuildPayload = pkg.NewDomainErrorSimple("INVALID_BUILD_INPUT", "Invalid build payload", http.StatusBadRequest)
)

// BuildHandler handles HTTP requests for custom build submissions: the
// customer configurator flow plus the admin console operations.

type BuildHandler struct {
	usecase   usecase.IBuildUseCase
	scheduler usecase.IRenderSchedulerUseCase
}

func NewBuildHandler(uc usecase.IBuildUseCase, scheduler usecase.IRenderSchedulerUseCase) *BuildHandler {
	return &BuildHandler{usecase: uc, scheduler: scheduler}
}

// CreateBuild creates a draft build with its initial version and queued
// standard render views.
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	var payload request.CreateBuildRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
		return
	}

	build, err := h.usecase.CreateDraft(c.Request.Context(), usecase.CreateDraftInput{
		Customer: payload.ToCustomer(),
		Type:     payload.Type,
		Dims:     payload.ToDims(),
		Options:  payload.ToOptions(),
		Notes:    payload.Notes,
	})
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBuild(build))
}

func (h *BuildHandler) GetBuild(c *gin.Context) {
	build, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuild(build))
}

func (h *BuildHandler) ListBuilds(c *gin.Context) {
	builds, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuilds(builds))
}

// LookupBuild serves the customer self-service lookup. phone+code is the
// exact credential path; name+phone is the loose recovery path.
func (h *BuildHandler) LookupBuild(c *gin.Context) {
	phone := c.Query("phone")
	code := c.Query("code")
	name := c.Query("name")

	var (
		build entities.Build
		err   error
	)
	switch {
	case code != "":
		build, err = h.usecase.FindByPhoneAndCode(c.Request.Context(), phone, code)
	case name != "":
		build, err = h.usecase.FindByNameAndPhone(c.Request.Context(), name, phone)
	default:
		err = usecase.ErrInvalidLookup
	}
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuild(build))
}

// SubmitBuild moves a draft to submitted and assigns the access code (stable
// once set).
func (h *BuildHandler) SubmitBuild(c *gin.Context) {
	build, err := h.usecase.MarkSubmitted(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuild(build))
}

// AddNote appends a customer refinement note; the revision engine creates a
// new version with a fresh render set including the detail view.
func (h *BuildHandler) AddNote(c *gin.Context) {
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
		return
	}

	build, err := h.usecase.AddCustomerNote(c.Request.Context(), c.Param("id"), payload.ChangeRequest, payload.NoteText)
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuild(build))
}

// RemoveNote removes a ledger entry. A miss still creates a new version,
// which is the admin's force-refresh lever for renders.
func (h *BuildHandler) RemoveNote(c *gin.Context) {
	var payload request.RemoveNoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
			return
		}
	}

	build, err := h.usecase.RemoveCustomerNote(c.Request.Context(), c.Param("id"), c.Param("note_id"), payload.Reason)
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuild(build))
}

// UpdateStatus sets the workflow label (admin console).
func (h *BuildHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuildPayload.HTTPStatus, errInvalidBuildPayload.ToHTTPError())
		return
	}

	build, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.BuildStatus(payload.Status))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuild(build))
}

// TriggerRender runs one scheduler tick for the build right now instead of
// waiting for the background sweep.
func (h *BuildHandler) TriggerRender(c *gin.Context) {
	outcome, err := h.scheduler.Tick(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBuildError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func mapBuildError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuildID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidProjectType),
		errors.Is(err, usecase.ErrInvalidDimensions),
		errors.Is(err, usecase.ErrEmptyChangeRequest),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidLookup):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBuildNotFound):
		return pkg.NewDomainErrorSimple("BUILD_NOT_FOUND", "Build not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTooManyConflicts):
		return pkg.NewDomainErrorSimple("CONFLICT_RETRY", "Concurrent update, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
