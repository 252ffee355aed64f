package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"mood-diary/internal/model"
	"mood-diary/internal/mood"
	"mood-diary/internal/reconcile"
	"mood-diary/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DiaryHandler struct {
	diaries *service.DiaryService
	engine  *reconcile.Engine
}

func NewDiaryHandler(diaries *service.DiaryService, engine *reconcile.Engine) *DiaryHandler {
	return &DiaryHandler{diaries: diaries, engine: engine}
}

// GET /api/diaries?start_date=&end_date=&limit=&offset=
func (h *DiaryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	resp, err := h.diaries.List(c.Request.Context(), c.GetString("user_id"),
		c.Query("start_date"), c.Query("end_date"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/diaries/:id
func (h *DiaryHandler) Get(c *gin.Context) {
	e, err := h.diaries.Get(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ไม่พบรายการ"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/diaries
func (h *DiaryHandler) Create(c *gin.Context) {
	var req model.CreateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, err := h.diaries.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeDiaryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// PUT /api/diaries/:id
func (h *DiaryHandler) Update(c *gin.Context) {
	var req model.UpdateDiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, err := h.diaries.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ไม่พบรายการ"})
			return
		}
		writeDiaryError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/diaries/:id
func (h *DiaryHandler) Delete(c *gin.Context) {
	err := h.diaries.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ไม่พบรายการ"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/diaries/reconcile — scan the trailing window for missing
// days. Always returns 200; internal failures degrade to skipped days.
func (h *DiaryHandler) Reconcile(c *gin.Context) {
	res := h.engine.Run(c.Request.Context(), c.GetString("user_id"), time.Now())
	c.JSON(http.StatusOK, res)
}

func writeDiaryError(c *gin.Context, err error) {
	var scoreErr *mood.InvalidScoreError
	switch {
	case errors.Is(err, service.ErrEntryExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &scoreErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": scoreErr.Error(), "field": scoreErr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
