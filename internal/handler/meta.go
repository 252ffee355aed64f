package handler

import (
	"net/http"

	"mood-diary/internal/model"
	"mood-diary/internal/mood"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct{ vocab *mood.Vocabulary }

func NewMetaHandler(vocab *mood.Vocabulary) *MetaHandler { return &MetaHandler{vocab: vocab} }

// GET /api/meta — static vocabulary and status tables for clients.
func (h *MetaHandler) Meta(c *gin.Context) {
	statuses := []model.Status{model.StatusDone, model.StatusInProgress, model.StatusPending, model.StatusCancelled}
	styles := make([]gin.H, 0, len(statuses))
	for _, s := range statuses {
		style := s.Style()
		styles = append(styles, gin.H{"status": s, "symbol": style.Symbol, "label": style.Label, "color": style.Color})
	}
	c.JSON(http.StatusOK, gin.H{
		"vocabulary": h.vocab,
		"statuses":   styles,
	})
}
