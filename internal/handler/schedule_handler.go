package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/importer"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/response"
	"github.com/stemsi/schedule-bot/internal/schedule"
	"github.com/stemsi/schedule-bot/internal/service"
	"github.com/stemsi/schedule-bot/internal/validator"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	log             zerolog.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		log:             log.With().Str("component", "schedule_handler").Logger(),
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type weekQuery struct {
	Week     string `form:"week" binding:"omitempty,oneof=even odd current next"`
	Subgroup int    `form:"subgroup" binding:"min=0,max=2"`
	Mode     string `form:"mode" binding:"omitempty,oneof=personal general"`
}

type dayQuery struct {
	Date     string `form:"date"`
	Subgroup int    `form:"subgroup" binding:"min=0,max=2"`
}

// Week godoc
// GET /api/v1/schedule/week?week=even|odd|current|next&subgroup=0|1|2&mode=personal|general
func (h *ScheduleHandler) Week(c *gin.Context) {
	var q weekQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	week := h.resolveWeek(q.Week)
	mode := schedule.ParseMode(q.Mode)
	subgroup := model.Subgroup(q.Subgroup)
	if mode == schedule.ModeGeneral {
		subgroup = model.SubgroupAll
	}

	// Text is rendered from the same rows as the payload, not from the chat cache.
	lessons, err := h.scheduleService.WeekLessons(c.Request.Context(), week, subgroup, mode)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load week")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"week":     week,
		"mode":     mode,
		"subgroup": subgroup,
		"lessons":  nonNil(lessons),
		"text":     schedule.FormatWeek(lessons, week, mode),
	})
}

// Day godoc
// GET /api/v1/schedule/day?date=YYYY-MM-DD&subgroup=0|1|2
func (h *ScheduleHandler) Day(c *gin.Context) {
	var q dayQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	date := h.scheduleService.Now()
	if q.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", q.Date, date.Location())
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
			return
		}
		date = parsed
	}
	subgroup := model.Subgroup(q.Subgroup)

	lessons, err := h.scheduleService.DayLessons(c.Request.Context(), date, subgroup)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load day")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":        date.Format("2006-01-02"),
		"week":        schedule.WeekTypeFor(date),
		"week_number": schedule.AcademicWeek(date),
		"subgroup":    subgroup,
		"lessons":     nonNil(lessons),
		"text":        schedule.FormatDay(lessons, date),
	})
}

// Export godoc
// GET /api/v1/schedule/export
// Streams the whole timetable as a workbook the seeder can read back.
func (h *ScheduleHandler) Export(c *gin.Context) {
	lessons, err := h.scheduleService.All(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load lessons for export")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	seeds := make([]model.LessonSeed, len(lessons))
	for i, l := range lessons {
		seeds[i] = l.Seed()
	}

	var buf bytes.Buffer
	if err := importer.WriteXLSX(&buf, seeds); err != nil {
		h.log.Error().Err(err).Msg("Failed to write workbook")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	fileName := fmt.Sprintf("schedule_%s.xlsx", h.scheduleService.Now().Format("20060102"))
	response.Attachment(c, fileName, xlsxContentType, buf.Bytes())
}

func (h *ScheduleHandler) resolveWeek(raw string) model.WeekType {
	switch raw {
	case "next":
		return h.scheduleService.NextWeek()
	case "even", "odd":
		return model.ParseWeekType(raw)
	default:
		return h.scheduleService.CurrentWeek()
	}
}

func nonNil(lessons []model.Lesson) []model.Lesson {
	if lessons == nil {
		return []model.Lesson{}
	}
	return lessons
}
