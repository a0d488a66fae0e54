package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/config"
	"github.com/stemsi/schedule-bot/internal/handler"
	"github.com/stemsi/schedule-bot/internal/importer"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/response"
	"github.com/stemsi/schedule-bot/internal/schedule"
	"github.com/stemsi/schedule-bot/internal/service"
	"github.com/stemsi/schedule-bot/internal/validator"
)

func init() {
	validator.Setup()
}

type staticCounter int

func (n staticCounter) Count(context.Context) (int, error) { return int(n), nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	seeds, err := importer.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	lessons := make([]model.Lesson, len(seeds))
	for i, s := range seeds {
		teacher, room := s.Teacher, s.Classroom
		lessons[i] = model.Lesson{
			ID: i + 1, SubjectName: s.Subject, DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime, EndTime: s.EndTime, LessonType: s.LessonType,
			Teacher: &teacher, Classroom: &room, WeekType: s.WeekType, Subgroup: s.Subgroup,
		}
	}

	log := zerolog.Nop()
	svc := service.NewScheduleService(schedule.NewMemoryStore(lessons), nil, time.Hour, time.UTC, log)
	handlers := &Handlers{
		Schedule: handler.NewScheduleHandler(svc, log),
		Subject:  handler.NewSubjectHandler(nil),
		System:   handler.NewSystemHandler(nil, nil, staticCounter(len(lessons)), staticCounter(3), log),
	}
	cfg := &config.Config{GinMode: gin.TestMode, ScheduleTTL: 10 * time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return SetupRouter(ctx, handlers, cfg)
}

type lessonsBody struct {
	Data struct {
		Week       string         `json:"week"`
		WeekNumber int            `json:"week_number"`
		Lessons    []model.Lesson `json:"lessons"`
		Text       string         `json:"text"`
	} `json:"data"`
	Error *response.ErrorBody `json:"error"`
}

func get(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) lessonsBody {
	t.Helper()
	var body lessonsBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	w := get(t, newTestRouter(t), "/health")
	if w.Code != http.StatusOK || w.Header().Get("X-Request-ID") == "" {
		t.Errorf("health: code=%d headers=%v", w.Code, w.Header())
	}
}

func TestWeekPersonal(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/v1/schedule/week?week=even&subgroup=1")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=600" {
		t.Errorf("Cache-Control = %q", got)
	}

	body := decode(t, w)
	if body.Data.Week != "even" || !strings.HasPrefix(body.Data.Text, "📚 Чётная неделя\n\n") {
		t.Errorf("unexpected week payload: %+v", body.Data)
	}
	for _, l := range body.Data.Lessons {
		if l.Subgroup == model.SubgroupSecond {
			t.Errorf("second subgroup lesson in a first subgroup view: %+v", l)
		}
		if l.WeekType == model.WeekOdd {
			t.Errorf("odd lesson in an even week: %+v", l)
		}
	}
	// 23 even lessons, 4 of them only for subgroup 2.
	if len(body.Data.Lessons) != 19 {
		t.Errorf("got %d lessons, want 19", len(body.Data.Lessons))
	}
}

func TestWeekTextMatchesLessons(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		query string
		week  model.WeekType
		mode  schedule.Mode
	}{
		{"week=even&subgroup=1", model.WeekEven, schedule.ModePersonal},
		{"week=odd&subgroup=2", model.WeekOdd, schedule.ModePersonal},
		{"week=odd&subgroup=2&mode=general", model.WeekOdd, schedule.ModeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			body := decode(t, get(t, r, "/api/v1/schedule/week?"+tt.query))
			if want := schedule.FormatWeek(body.Data.Lessons, tt.week, tt.mode); body.Data.Text != want {
				t.Errorf("text does not render the returned lessons:\n%s\nwant:\n%s", body.Data.Text, want)
			}
		})
	}
}

func TestWeekGeneralMergesSlots(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/v1/schedule/week?week=even&mode=general")
	body := decode(t, w)
	if len(body.Data.Lessons) != 23 {
		t.Errorf("general view returned %d lessons, want 23", len(body.Data.Lessons))
	}
	want := "• 11:45–13:20 — Иностранный язык (1 подгруппа) (пр), доц. Сергейчик Т.С., ауд. 5203 | " +
		"Архитектура вычислительных систем (2 подгруппа) (лаб), асс. Лось М.А., ауд. 2131а"
	if !strings.Contains(body.Data.Text, want) {
		t.Errorf("merged slot missing from:\n%s", body.Data.Text)
	}
}

func TestWeekValidation(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/v1/schedule/week?week=weekly&subgroup=5")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", w.Code)
	}
	body := decode(t, w)
	if body.Error == nil || body.Error.Code != response.ErrValidation {
		t.Fatalf("error = %+v", body.Error)
	}
	if _, ok := body.Error.Fields["subgroup"]; !ok {
		t.Errorf("fields = %v, want subgroup", body.Error.Fields)
	}
	if _, ok := body.Error.Fields["week"]; !ok {
		t.Errorf("fields = %v, want week", body.Error.Fields)
	}
}

func TestDay(t *testing.T) {
	// Monday of the second academic week.
	w := get(t, newTestRouter(t), "/api/v1/schedule/day?date=2025-09-08&subgroup=2")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body.Data.Week != "even" || body.Data.WeekNumber != 2 {
		t.Errorf("week = %q (%d)", body.Data.Week, body.Data.WeekNumber)
	}
	if len(body.Data.Lessons) != 4 {
		t.Errorf("got %d lessons, want 4", len(body.Data.Lessons))
	}
	if !strings.HasPrefix(body.Data.Text, "📅 Расписание на 08.09.2025:") {
		t.Errorf("text = %q", body.Data.Text)
	}
}

func TestDayRejectsBadDate(t *testing.T) {
	r := newTestRouter(t)
	for _, date := range []string{"08.09.2025", "2025-13-01", "2025-02-30"} {
		w := get(t, r, "/api/v1/schedule/day?date="+date)
		if w.Code != http.StatusBadRequest {
			t.Errorf("date %s: code = %d", date, w.Code)
			continue
		}
		body := decode(t, w)
		if body.Error == nil || body.Error.Code != response.ErrInvalidDate {
			t.Errorf("date %s: error = %+v, want %s", date, body.Error, response.ErrInvalidDate)
		}
	}
}

func TestExportRoundTrips(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/v1/schedule/export")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="schedule_`) {
		t.Errorf("Content-Disposition = %q", w.Header().Get("Content-Disposition"))
	}
	seeds, err := importer.ReadXLSX(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("exported workbook unreadable: %v", err)
	}
	if len(seeds) != 46 {
		t.Errorf("exported %d lessons, want 46", len(seeds))
	}
}

func TestStatus(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/v1/system/status")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q", w.Header().Get("Cache-Control"))
	}
	var body struct {
		Data struct {
			Lessons  int    `json:"lessons"`
			Users    int    `json:"users"`
			Postgres string `json:"postgres"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Lessons != 46 || body.Data.Users != 3 || body.Data.Postgres != "disabled" {
		t.Errorf("status = %+v", body.Data)
	}
}

func TestNoRoute(t *testing.T) {
	w := get(t, newTestRouter(t), "/api/v1/nope")
	body := decode(t, w)
	if w.Code != http.StatusNotFound || body.Error == nil || body.Error.Code != response.ErrNotFound {
		t.Errorf("code = %d, body = %s", w.Code, w.Body.String())
	}
}
