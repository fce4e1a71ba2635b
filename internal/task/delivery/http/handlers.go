package http

import (
	"github.com/gin-gonic/gin"

	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/pkg/response"
)

// Week godoc
// @Summary     Week calendar
// @Description Returns the Monday-to-Sunday window with positioned task cards. Completed tasks are omitted.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string true  "Acting user"
// @Param       date      query  string false "YYYY-MM-DD or a phrase like 'next week' (default: today)"
// @Param       status    query  string false "all, active, completed or overdue"
// @Param       tags      query  []string false "Required tags (AND)"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQueryReq[weekReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Week(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Week: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWeekResp(output))
}

// Agenda godoc
// @Summary     Sidebar agenda
// @Description Open tasks spanning today and open tasks starting later.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string true  "Acting user"
// @Param       status    query  string false "all, active, completed or overdue"
// @Param       tags      query  []string false "Required tags (AND)"
// @Success     200 {object} agendaResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/agenda [GET]
func (h *handler) Agenda(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQueryReq[filterReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Agenda(ctx, sc, task.AgendaInput{Filter: req.toFilter()})
	if err != nil {
		h.l.Errorf(ctx, "uc.Agenda: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAgendaResp(output))
}

// History godoc
// @Summary     Completion history
// @Description Completed tasks, most recent first.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string true  "Acting user"
// @Param       tags      query  []string false "Required tags (AND)"
// @Success     200 {object} historyResp
// @Router      /api/v1/planner/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQueryReq[historyReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task for the acting user. The start date may not be in the past.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Acting user"
// @Param       body      body   taskReq true "Task data"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, sc, taskID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Overwrites the editable fields. Completion, comments and ownership are kept.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Acting user"
// @Param       id        path   string  true "Task ID"
// @Param       body      body   taskReq true "Task data"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toUpdateInput(taskID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true  "Acting user"
// @Param       id        path   string true  "Task ID"
// @Param       open      query  string false "ID of the task open in the detail panel"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Delete(ctx, sc, task.DeleteInput{ID: taskID(c), OpenTaskID: c.Query("open")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{ClosePanel: output.ClosePanel})
}

// Complete godoc
// @Summary     Mark a task completed
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} completionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Complete(ctx, sc, taskID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompletionResp(output))
}

// Toggle godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} completionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleCompletion(ctx, sc, taskID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompletionResp(output))
}

// AddComment godoc
// @Summary     Comment on a task
// @Description Blank comments are ignored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID   header string     true  "Acting user"
// @Param       X-User-Name header string     false "Name shown on the comment"
// @Param       id          path   string     true  "Task ID"
// @Param       body        body   commentReq true  "Comment"
// @Success     200 {object} commentAddedResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id}/comments [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processJSONReq[commentReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddComment(ctx, sc, task.AddCommentInput{ID: taskID(c), Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, commentAddedResp{Task: newViewResp(output.TaskView), Added: output.Added})
}

// RecordPomodoro godoc
// @Summary     Record a finished pomodoro
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Acting user"
// @Param       id        path   string      true "Task ID"
// @Param       body      body   pomodoroReq true "Session length"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tasks/{id}/pomodoro [POST]
func (h *handler) RecordPomodoro(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processJSONReq[pomodoroReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RecordPomodoro(ctx, sc, task.RecordPomodoroInput{ID: taskID(c), Seconds: req.Seconds})
	if err != nil {
		h.l.Errorf(ctx, "uc.RecordPomodoro: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// TagCounts godoc
// @Summary     Tag usage counts
// @Tags        Tags
// @Produce     json
// @Param       X-User-ID  header string true  "Acting user"
// @Param       completion query  string false "Empty for all, 'active' or 'completed'"
// @Success     200 {object} tagCountsResp
// @Router      /api/v1/planner/tags [GET]
func (h *handler) TagCounts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQueryReq[tagCountsReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.TagCounts(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.TagCounts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTagCountsResp(output))
}

// Vocabulary godoc
// @Summary     Known tags
// @Tags        Tags
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Success     200 {object} tagsResp
// @Router      /api/v1/planner/tags/vocabulary [GET]
func (h *handler) Vocabulary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Vocabulary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Vocabulary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, tagsResp{Tags: output.Tags})
}

// AddTag godoc
// @Summary     Add a tag to the vocabulary
// @Tags        Tags
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Acting user"
// @Param       body      body   addTagReq true "Tag"
// @Success     200 {object} tagsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/tags [POST]
func (h *handler) AddTag(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processJSONReq[addTagReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddTag(ctx, sc, req.Tag)
	if err != nil {
		h.l.Errorf(ctx, "uc.AddTag: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, tagsResp{Tags: output.Tags})
}

// RemoveTag godoc
// @Summary     Remove a tag from the vocabulary
// @Description Tasks keep the tag; it is only no longer suggested.
// @Tags        Tags
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Param       tag       path   string true "Tag"
// @Success     200 {object} tagsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/tags/{tag} [DELETE]
func (h *handler) RemoveTag(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RemoveTag(ctx, sc, c.Param("tag"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveTag: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, tagsResp{Tags: output.Tags})
}

// SuggestTags godoc
// @Summary     Tag suggestions
// @Tags        Tags
// @Produce     json
// @Param       X-User-ID header string   true  "Acting user"
// @Param       q         query  string   false "Typed fragment"
// @Param       current   query  []string false "Tags already on the task"
// @Success     200 {object} tagsResp
// @Router      /api/v1/planner/tags/suggest [GET]
func (h *handler) SuggestTags(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processQueryReq[suggestReq](h, c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SuggestTags(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTags: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, tagsResp{Tags: output.Tags})
}

// Preferences godoc
// @Summary     UI preferences
// @Tags        Preferences
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Success     200 {object} preferencesResp
// @Router      /api/v1/planner/preferences [GET]
func (h *handler) Preferences(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preferences(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preferences: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, preferencesResp{PomodoroVisible: output.PomodoroVisible})
}

// TogglePomodoro godoc
// @Summary     Show or hide the pomodoro widget
// @Tags        Preferences
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Success     200 {object} preferencesResp
// @Router      /api/v1/planner/preferences/pomodoro/toggle [POST]
func (h *handler) TogglePomodoro(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.TogglePomodoro(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.TogglePomodoro: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, preferencesResp{PomodoroVisible: output.PomodoroVisible})
}

// Export godoc
// @Summary     Backup snapshot
// @Description Every task of the user with the tag vocabulary and preferences.
// @Tags        Planner
// @Produce     json
// @Param       X-User-ID header string true "Acting user"
// @Success     200 {object} exportResp
// @Router      /api/v1/planner/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newExportResp(output))
}
