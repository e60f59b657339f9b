package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-remind-again/internal/app"
)

const calendarContentType = "text/calendar; charset=utf-8"

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling create reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	output, err := h.useCase.CreateReminder(c.Request.Context(), app.CreateReminderInput{
		Name:      req.Name,
		TimeOfDay: req.TimeOfDay,
		Schedule:  req.Schedule,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder created successfully",
		"reminder_id", output.ID,
		"schedule", output.Schedule,
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling list reminders request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	output, err := h.useCase.ListReminders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling get reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	output, err := h.useCase.GetReminder(c.Request.Context(), app.GetReminderInput{ID: id})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling update reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	output, err := h.useCase.UpdateReminder(c.Request.Context(), app.UpdateReminderInput{
		ID:        id,
		Name:      req.Name,
		TimeOfDay: req.TimeOfDay,
		Schedule:  req.Schedule,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder updated successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling delete reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	if err := h.useCase.DeleteReminder(c.Request.Context(), app.DeleteReminderInput{ID: id}); err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder deleted successfully",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) ListOccurrences(c *gin.Context) {
	id := c.Param("id")

	var req ListOccurrencesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	output, err := h.useCase.ListOccurrences(c.Request.Context(), app.ListOccurrencesInput{
		ID:    id,
		From:  req.From,
		To:    req.To,
		Limit: req.Limit,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromOccurrencesDTO(output))
}

func (h *ReminderHandler) GetReminderStatus(c *gin.Context) {
	id := c.Param("id")

	var req AtRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	output, err := h.useCase.GetReminderStatus(c.Request.Context(), app.GetReminderStatusInput{
		ID:  id,
		Now: req.At,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromStatusDTO(output))
}

// TriggerReminder fires a reminder by hand, as the alarm scheduler would.
func (h *ReminderHandler) TriggerReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling trigger reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	var req TriggerRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	output, err := h.useCase.HandleTrigger(c.Request.Context(), app.HandleTriggerInput{
		ID:              id,
		IsRepeat:        req.IsRepeat,
		IntervalSeconds: req.IntervalSeconds,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromTriggerDTO(output))
}

func (h *ReminderHandler) SnoozeReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling snooze reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	var req SnoozeRequest
	if !h.bindOptionalJSON(c, &req) {
		return
	}

	output, err := h.useCase.Snooze(c.Request.Context(), app.SnoozeInput{
		ID:              id,
		IntervalSeconds: req.IntervalSeconds,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder snoozed successfully",
		"reminder_id", output.ReminderID,
		"interval_seconds", output.IntervalSeconds,
	)
	c.JSON(http.StatusOK, FromSnoozeDTO(output))
}

func (h *ReminderHandler) DismissReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling dismiss reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	if err := h.useCase.Dismiss(c.Request.Context(), app.DismissInput{ID: id}); err != nil {
		h.handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) DoneReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling done reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	if err := h.useCase.Done(c.Request.Context(), app.DoneInput{ID: id}); err != nil {
		h.handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) CheckDueReminders(c *gin.Context) {
	var req AtRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.badRequest(c, err)

		return
	}

	output, err := h.useCase.CheckDueReminders(c.Request.Context(), app.CheckDueRemindersInput{Now: req.At})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDueDTO(output))
}

func (h *ReminderHandler) SyncAlarms(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling sync alarms request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	output, err := h.useCase.SyncAlarms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromSyncDTO(output))
}

func (h *ReminderHandler) ExportCalendar(c *gin.Context) {
	output, err := h.useCase.ExportCalendar(c.Request.Context(), app.ExportCalendarInput{})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "calendar exported",
		"events", output.Events,
		"omitted", output.Omitted,
	)
	c.Data(http.StatusOK, calendarContentType, output.Data)
}

// bindOptionalJSON accepts an empty body as the zero request.
func (h *ReminderHandler) bindOptionalJSON(c *gin.Context, req any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}

	if err := c.ShouldBindJSON(req); err != nil {
		h.badRequest(c, err)

		return false
	}

	return true
}

func (h *ReminderHandler) badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

func (h *ReminderHandler) handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "internal server error",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.ListReminders)
		reminders.GET("/due", h.CheckDueReminders)
		reminders.POST("/sync", h.SyncAlarms)
		reminders.GET("/calendar.ics", h.ExportCalendar)
		reminders.GET("/:id", h.GetReminder)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
		reminders.GET("/:id/status", h.GetReminderStatus)
		reminders.GET("/:id/occurrences", h.ListOccurrences)
		reminders.POST("/:id/trigger", h.TriggerReminder)
		reminders.POST("/:id/snooze", h.SnoozeReminder)
		reminders.POST("/:id/dismiss", h.DismissReminder)
		reminders.POST("/:id/done", h.DoneReminder)
	}
}
