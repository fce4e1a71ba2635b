package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
)

// --- Request DTOs ---

type taskReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	EndDate     string   `json:"endDate"`
	StartTime   string   `json:"startTime"`
	EndTime     string   `json:"endTime"`
	Color       string   `json:"color"`
	Tags        []string `json:"tags"`
}

func (r taskReq) toFields() task.TaskFields {
	return task.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		EndDate:     r.EndDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Color:       model.Color(strings.ToLower(strings.TrimSpace(r.Color))),
		Tags:        r.Tags,
	}
}

func (r taskReq) toCreateInput() task.CreateInput {
	return task.CreateInput{TaskFields: r.toFields()}
}

func (r taskReq) toUpdateInput(id string) task.UpdateInput {
	return task.UpdateInput{ID: id, TaskFields: r.toFields()}
}

// ---

type filterReq struct {
	Status string   `form:"status"`
	Tags   []string `form:"tags"`
}

func (r filterReq) toFilter() task.Filter {
	return task.Filter{
		Status: tagfilter.StatusFilter(strings.ToLower(r.Status)),
		Tags:   splitTags(r.Tags),
	}
}

type weekReq struct {
	Date   string   `form:"date"`
	Status string   `form:"status"`
	Tags   []string `form:"tags"`
}

func (r weekReq) toInput() task.WeekInput {
	return task.WeekInput{
		Date:   r.Date,
		Filter: filterReq{Status: r.Status, Tags: r.Tags}.toFilter(),
	}
}

type historyReq struct {
	Tags []string `form:"tags"`
}

func (r historyReq) toInput() task.HistoryInput {
	return task.HistoryInput{Tags: splitTags(r.Tags)}
}

type tagCountsReq struct {
	Completion string `form:"completion"`
}

func (r tagCountsReq) toInput() task.TagCountsInput {
	return task.TagCountsInput{Completion: tagfilter.Completion(strings.ToLower(r.Completion))}
}

type suggestReq struct {
	Query   string   `form:"q"`
	Current []string `form:"current"`
}

func (r suggestReq) toInput() task.SuggestTagsInput {
	return task.SuggestTagsInput{Query: r.Query, Current: splitTags(r.Current)}
}

type addTagReq struct {
	Tag string `json:"tag" binding:"required"`
}

type commentReq struct {
	Text string `json:"text"`
}

type pomodoroReq struct {
	Seconds int `json:"seconds"`
}

// splitTags accepts both repeated parameters and comma separated lists.
func splitTags(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// --- Response DTOs ---

type commentResp struct {
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type taskResp struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Date             string        `json:"date"`
	EndDate          string        `json:"endDate"`
	StartTime        string        `json:"startTime"`
	EndTime          string        `json:"endTime"`
	Color            string        `json:"color"`
	Tags             []string      `json:"tags"`
	Completed        bool          `json:"completed"`
	CompletedAt      *time.Time    `json:"completedAt"`
	Status           string        `json:"status"`
	Comments         []commentResp `json:"comments"`
	CreatedByUserID  string        `json:"createdByUserId"`
	AssignedUserIDs  []string      `json:"assignedUserIds"`
	PomodoroSessions int           `json:"pomodoroSessions"`
	TimeSpent        int           `json:"timeSpent"`
}

func newTaskResp(t model.Task, status model.Status) taskResp {
	comments := make([]commentResp, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, commentResp{UserName: c.AuthorName, Text: c.Text, Timestamp: c.Timestamp})
	}
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Date:             t.Date,
		EndDate:          t.End(),
		StartTime:        t.StartTime,
		EndTime:          t.EndTime,
		Color:            string(t.Color),
		Tags:             tags,
		Completed:        t.Completed,
		CompletedAt:      t.CompletedAt,
		Status:           string(status),
		Comments:         comments,
		CreatedByUserID:  t.CreatedByUserID,
		AssignedUserIDs:  t.AssignedUserIDs,
		PomodoroSessions: t.PomodoroSessions,
		TimeSpent:        t.TimeSpent,
	}
}

func newViewResp(v task.TaskView) taskResp {
	return newTaskResp(v.Task, v.Status)
}

func newViewsResp(vs []task.TaskView) []taskResp {
	out := make([]taskResp, 0, len(vs))
	for _, v := range vs {
		out = append(out, newViewResp(v))
	}
	return out
}

type mutationResp struct {
	Task      taskResp `json:"task"`
	AddedTags []string `json:"addedTags"`
}

func (h *handler) newCreateResp(out task.CreateOutput) mutationResp {
	return mutationResp{Task: newViewResp(out.TaskView), AddedTags: nonNil(out.AddedTags)}
}

func (h *handler) newUpdateResp(out task.UpdateOutput) mutationResp {
	return mutationResp{Task: newViewResp(out.TaskView), AddedTags: nonNil(out.AddedTags)}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newViewResp(out.TaskView)}
}

type completionResp struct {
	Task    taskResp `json:"task"`
	Changed bool     `json:"changed"`
}

func (h *handler) newCompletionResp(out task.CompletionOutput) completionResp {
	return completionResp{Task: newViewResp(out.TaskView), Changed: out.Changed}
}

type commentAddedResp struct {
	Task  taskResp `json:"task"`
	Added bool     `json:"added"`
}

type deleteResp struct {
	ClosePanel bool `json:"closePanel"`
}

type geometryResp struct {
	Top    int `json:"top"`
	Height int `json:"height"`
}

type calendarTaskResp struct {
	Task      taskResp     `json:"task"`
	Segment   string       `json:"segment"`
	Geometry  geometryResp `json:"geometry"`
	TimeLabel string       `json:"timeLabel"`
	MultiDay  bool         `json:"multiDay"`
}

type dayResp struct {
	Date    string             `json:"date"`
	Weekday string             `json:"weekday"`
	IsToday bool               `json:"isToday"`
	Tasks   []calendarTaskResp `json:"tasks"`
}

type weekResp struct {
	Label string    `json:"label"`
	Prev  string    `json:"prev"`
	Next  string    `json:"next"`
	Days  []dayResp `json:"days"`
}

func (h *handler) newWeekResp(out task.WeekOutput) weekResp {
	days := make([]dayResp, 0, len(out.Days))
	for _, d := range out.Days {
		cards := make([]calendarTaskResp, 0, len(d.Tasks))
		for _, ct := range d.Tasks {
			cards = append(cards, calendarTaskResp{
				Task:      newViewResp(ct.TaskView),
				Segment:   string(ct.Segment),
				Geometry:  geometryResp{Top: ct.Geometry.TopMinutes, Height: ct.Geometry.HeightMinutes},
				TimeLabel: ct.TimeLabel,
				MultiDay:  ct.Task.IsMultiDay(),
			})
		}
		days = append(days, dayResp{Date: d.Key, Weekday: d.Weekday, IsToday: d.IsToday, Tasks: cards})
	}
	return weekResp{Label: out.Label, Prev: out.Prev, Next: out.Next, Days: days}
}

type agendaResp struct {
	Today    []taskResp `json:"today"`
	Upcoming []taskResp `json:"upcoming"`
}

func (h *handler) newAgendaResp(out task.AgendaOutput) agendaResp {
	return agendaResp{Today: newViewsResp(out.Today), Upcoming: newViewsResp(out.Upcoming)}
}

type historyEntryResp struct {
	Task  taskResp `json:"task"`
	Label string   `json:"label"`
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Count   int                `json:"count"`
	Summary string             `json:"summary"`
}

func (h *handler) newHistoryResp(out task.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, historyEntryResp{Task: newViewResp(e.TaskView), Label: e.Label})
	}
	return historyResp{Entries: entries, Count: out.Count, Summary: completedSummary(out.Count)}
}

func completedSummary(n int) string {
	return strconv.Itoa(n) + " tasks completed"
}

type tagCountResp struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type tagCountsResp struct {
	Tags []tagCountResp `json:"tags"`
}

func (h *handler) newTagCountsResp(out task.TagCountsOutput) tagCountsResp {
	tags := make([]tagCountResp, 0, len(out.Counts))
	for _, c := range out.Counts {
		tags = append(tags, tagCountResp{Tag: c.Tag, Count: c.Count})
	}
	return tagCountsResp{Tags: tags}
}

type tagsResp struct {
	Tags []string `json:"tags"`
}

type preferencesResp struct {
	PomodoroVisible bool `json:"pomodoroVisible"`
}

type exportResp struct {
	Tasks           []model.Task `json:"tasks"`
	Tags            []string     `json:"tags"`
	PomodoroVisible bool         `json:"pomodoroVisible"`
}

func newExportResp(o task.ExportOutput) exportResp {
	tasks := o.Tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	return exportResp{Tasks: tasks, Tags: nonNil(o.Tags), PomodoroVisible: o.PomodoroVisible}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
