package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/middleware"
	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/pkg/log"
	"github.com/giorgi26/Planner/pkg/response"
)

// mockUseCase implements the calls a test sets; the rest panic through the nil embed.
type mockUseCase struct {
	task.UseCase

	createFn func(sc model.Scope, in task.CreateInput) (task.CreateOutput, error)
	detailFn func(sc model.Scope, id string) (task.DetailOutput, error)
	deleteFn func(sc model.Scope, in task.DeleteInput) (task.DeleteOutput, error)
	weekFn   func(sc model.Scope, in task.WeekInput) (task.WeekOutput, error)
	exportFn func(sc model.Scope) (task.ExportOutput, error)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in task.CreateInput) (task.CreateOutput, error) {
	return m.createFn(sc, in)
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	return m.detailFn(sc, id)
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, in task.DeleteInput) (task.DeleteOutput, error) {
	return m.deleteFn(sc, in)
}

func (m *mockUseCase) Week(ctx context.Context, sc model.Scope, in task.WeekInput) (task.WeekOutput, error) {
	return m.weekFn(sc, in)
}

func (m *mockUseCase) Export(ctx context.Context, sc model.Scope) (task.ExportOutput, error) {
	return m.exportFn(sc)
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1/planner"), New(l, uc), middleware.New(l, middleware.Config{}))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(middleware.HeaderUserID, "u1")
	req.Header.Set(middleware.HeaderUserName, "Ada")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestCreate(t *testing.T) {
	var gotScope model.Scope
	var gotInput task.CreateInput
	uc := &mockUseCase{
		createFn: func(sc model.Scope, in task.CreateInput) (task.CreateOutput, error) {
			gotScope, gotInput = sc, in
			if in.Date == "2020-01-01" {
				return task.CreateOutput{}, task.ErrDateInPast
			}
			return task.CreateOutput{
				TaskView: task.TaskView{
					Task:   model.Task{ID: "t1", Title: in.Title, Date: in.Date, Color: in.Color},
					Status: model.StatusActive,
				},
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/planner/tasks",
		`{"title":"Standup","date":"2025-03-12","startTime":"09:00","endTime":"09:15","color":" Blue ","tags":["work"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotScope != (model.Scope{UserID: "u1", UserName: "Ada"}) {
		t.Errorf("scope not forwarded: %+v", gotScope)
	}
	if gotInput.Color != model.ColorBlue || len(gotInput.Tags) != 1 {
		t.Errorf("unexpected input %+v", gotInput)
	}

	data := decode(t, w).Data.(map[string]any)
	tk := data["task"].(map[string]any)
	if tk["id"] != "t1" || tk["status"] != "active" || tk["endDate"] != "2025-03-12" {
		t.Errorf("unexpected task payload %v", tk)
	}

	w = do(r, http.MethodPost, "/api/v1/planner/tasks", `{"title":"Old","date":"2020-01-01","startTime":"09:00","endTime":"10:00"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := decode(t, w).Message; msg != "You cannot create a task in the past." {
		t.Errorf("unexpected message %q", msg)
	}

	w = do(r, http.MethodPost, "/api/v1/planner/tasks", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: expected 400, got %d", w.Code)
	}
}

func TestDetailErrors(t *testing.T) {
	uc := &mockUseCase{
		detailFn: func(sc model.Scope, id string) (task.DetailOutput, error) {
			if id == "boom" {
				return task.DetailOutput{}, errors.New("disk on fire")
			}
			return task.DetailOutput{}, task.ErrTaskNotFound
		},
	}
	r := newTestRouter(uc)

	if w := do(r, http.MethodGet, "/api/v1/planner/tasks/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w := do(r, http.MethodGet, "/api/v1/planner/tasks/boom", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg := decode(t, w).Message; strings.Contains(msg, "disk") {
		t.Errorf("internal error details leaked: %q", msg)
	}
}

func TestDeleteForwardsOpenPanel(t *testing.T) {
	uc := &mockUseCase{
		deleteFn: func(sc model.Scope, in task.DeleteInput) (task.DeleteOutput, error) {
			return task.DeleteOutput{ClosePanel: in.OpenTaskID == in.ID}, nil
		},
	}
	r := newTestRouter(uc)

	w := do(r, http.MethodDelete, "/api/v1/planner/tasks/t1?open=t1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := decode(t, w).Data.(map[string]any)
	if data["closePanel"] != true {
		t.Errorf("expected closePanel true, got %v", data)
	}
}

func TestWeekQuery(t *testing.T) {
	var got task.WeekInput
	uc := &mockUseCase{
		weekFn: func(sc model.Scope, in task.WeekInput) (task.WeekOutput, error) {
			got = in
			return task.WeekOutput{Label: "Mar 10 - Mar 16, 2025", Days: []task.Day{{Key: "2025-03-10"}}}, nil
		},
	}
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/planner/week?date=next+week&status=Overdue&tags=work,urgent&tags=review", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got.Date != "next week" || got.Filter.Status != tagfilter.StatusOverdue {
		t.Errorf("unexpected input %+v", got)
	}
	if len(got.Filter.Tags) != 3 || got.Filter.Tags[2] != "review" {
		t.Errorf("expected comma and repeated tags to merge, got %v", got.Filter.Tags)
	}

	data := decode(t, w).Data.(map[string]any)
	if data["label"] != "Mar 10 - Mar 16, 2025" {
		t.Errorf("unexpected payload %v", data)
	}
}

func TestMissingIdentity(t *testing.T) {
	r := newTestRouter(&mockUseCase{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/planner/agenda", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags([]string{"a, b", "", "c"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("unexpected %v", got)
	}
}

func TestExport(t *testing.T) {
	uc := &mockUseCase{
		exportFn: func(sc model.Scope) (task.ExportOutput, error) {
			if sc.UserID != "u1" {
				return task.ExportOutput{}, errors.New("wrong scope")
			}
			return task.ExportOutput{
				Tasks:           []model.Task{{ID: "t1", Title: "Standup", Date: "2025-03-12"}},
				PomodoroVisible: true,
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/planner/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := decode(t, w).Data.(map[string]any)
	tasks := data["tasks"].([]any)
	if len(tasks) != 1 || tasks[0].(map[string]any)["id"] != "t1" {
		t.Errorf("unexpected tasks %v", data["tasks"])
	}
	if tags, ok := data["tags"].([]any); !ok || len(tags) != 0 {
		t.Errorf("tags should be an empty list, got %v", data["tags"])
	}
	if data["pomodoroVisible"] != true {
		t.Errorf("unexpected preferences %v", data["pomodoroVisible"])
	}
}
