package handler

import (
	"net/http"
	"strconv"
	"time"

	"mood-diary/internal/insight"
	"mood-diary/internal/service"

	"github.com/gin-gonic/gin"
)

type TrendsHandler struct{ stats *service.StatsService }

func NewTrendsHandler(stats *service.StatsService) *TrendsHandler {
	return &TrendsHandler{stats: stats}
}

// GET /api/trends/insights?period=week|month|year&offset=0
// Returns the aggregate statistics plus the generated insight strings.
func (h *TrendsHandler) Insights(c *gin.Context) {
	period := c.DefaultQuery("period", "week")
	switch period {
	case "week", "month", "year":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	ctx, err := h.stats.BuildContext(c.Request.Context(), c.GetString("user_id"), period, offset, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	report := insight.Build(ctx)
	resp := gin.H{
		"period":   period,
		"offset":   offset,
		"stats":    ctx,
		"insights": report,
	}
	if ctx.Community != nil {
		resp["percentile_text"] = insight.PercentileText(ctx.Community.PercentileOfMe)
	}
	c.JSON(http.StatusOK, resp)
}
