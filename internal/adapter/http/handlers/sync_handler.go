package handlers

import (
	"errors"
	"net/http"

	response "woodshop_builds/internal/adapter/http/dto/response"
	"woodshop_builds/internal/usecase"
	"woodshop_builds/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the cloud reconciliation operations to the admin
// console: best-effort sync, destructive restore, and the backup event log.

type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

// RunSync merges local and remote last-writer-wins and pushes back what is
// locally newer. Never fails for remote trouble; the report says what
// happened.
func (h *SyncHandler) RunSync(c *gin.Context) {
	report, err := h.usecase.Sync(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSyncReport(report))
}

// RestoreFromCloud overwrites the entire local collection with the remote
// snapshot. Destructive to local; the route is gated behind an explicit
// confirm query parameter.
func (h *SyncHandler) RestoreFromCloud(c *gin.Context) {
	if c.Query("confirm") != "true" {
		appErr := pkg.NewDomainErrorSimple("CONFIRM_REQUIRED", "Restore overwrites local data; pass confirm=true", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	restored, err := h.usecase.RestoreFromCloud(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RestoreResponse{Restored: restored})
}

func (h *SyncHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.Events(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBackupEvents(events))
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRemoteDisabled):
		return pkg.NewDomainErrorSimple("REMOTE_DISABLED", "Remote mirror not configured", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
