package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"wellbeing-ai/internal/analytics"
	"wellbeing-ai/internal/engine"
)

const defaultHistoryLimit = 20

type Handler struct {
	engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{engine: e}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// POST /api/analyze
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}

	res, err := h.engine.AnalyzeAssignment(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty_input", "detail": "please provide the assignment text"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analyze_failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                res.Record.ID,
		"detected_language": res.Record.DetectedLanguage,
		"analysis":          res.Record.Analysis,
		"urgent":            res.Urgent,
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// POST /api/chat
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	if req.SessionID == "" {
		req.SessionID = "default"
	}

	res, err := h.engine.SendChatMessage(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty_input", "detail": "please type something first"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "chat_failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                res.Exchange.ID,
		"detected_language": res.Exchange.DetectedLanguage,
		"reply":             res.Exchange.ReplyLocal,
		"reply_en":          res.Exchange.ReplyEN,
		"urgent":            res.Exchange.UrgentFlag,
	})
}

// GET /api/history/assignments
func (h *Handler) RecentAssignments(c *gin.Context) {
	recs, err := h.engine.RecentAssignments(limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": recs})
}

// GET /api/history/chats
func (h *Handler) RecentChats(c *gin.Context) {
	recs, err := h.engine.RecentChats(limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": recs})
}

// GET /api/report
func (h *Handler) DailyReport(c *gin.Context) {
	date := time.Now().UTC()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date", "detail": "expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	assignments, err := h.engine.RecentAssignments(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report_failed", "detail": err.Error()})
		return
	}
	chats, err := h.engine.RecentChats(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report_failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, analytics.AnalyzeDay(assignments, chats, date))
}

// GET /healthcheck
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func limitParam(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultHistoryLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return defaultHistoryLimit
	}
	return n
}
