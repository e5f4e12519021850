package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/httpresp"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucBackup "github.com/BruksfildServices01/salon-agenda/internal/usecase/backup"
)

type BackupHandler struct {
	create  *ucBackup.CreateBackup
	list    *ucBackup.ListBackups
	restore *ucBackup.RestoreBackup
}

func NewBackupHandler(
	create *ucBackup.CreateBackup,
	list *ucBackup.ListBackups,
	restore *ucBackup.RestoreBackup,
) *BackupHandler {
	return &BackupHandler{create: create, list: list, restore: restore}
}

type RestoreBackupRequest struct {
	Key string `json:"key" binding:"required"`
}

func (h *BackupHandler) Create(c *gin.Context) {
	out, err := h.create.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *BackupHandler) List(c *gin.Context) {
	backups, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, backups)
}

// Restore replaces every client, booking and setting with the snapshot.
func (h *BackupHandler) Restore(c *gin.Context) {
	var req RestoreBackupRequest
	if !bindJSON(c, &req) {
		return
	}

	snap, err := h.restore.Execute(c.Request.Context(), middleware.UserID(c), req.Key)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"key":          req.Key,
		"version":      snap.Version,
		"created_at":   snap.CreatedAt,
		"clients":      len(snap.Clients),
		"bookings":     len(snap.Bookings),
		"appointments": len(snap.Appointments),
	})
}
