package usecase

import (
	"context"
	"strings"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// AddComment appends a comment signed with the scope user's name. Blank text
// is ignored without an error.
func (uc *implUseCase) AddComment(ctx context.Context, sc model.Scope, input task.AddCommentInput) (task.AddCommentOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		detail, err := uc.Detail(ctx, sc, input.ID)
		if err != nil {
			return task.AddCommentOutput{}, err
		}
		return task.AddCommentOutput{TaskView: detail.TaskView}, nil
	}

	now := uc.clock()
	t, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              input.ID,
		CreatedByUserID: sc.UserID,
		Mutate: func(t *model.Task) error {
			t.Comments = append(t.Comments, model.Comment{
				AuthorName: sc.UserName,
				Text:       text,
				Timestamp:  now,
			})
			return nil
		},
	})
	if err != nil {
		err = mapRepoErr(err)
		if err != task.ErrTaskNotFound {
			uc.l.Errorf(ctx, "usecase.AddComment: repo.UpdateTask(%s): %v", input.ID, err)
		}
		return task.AddCommentOutput{}, err
	}

	return task.AddCommentOutput{TaskView: newView(t, now), Added: true}, nil
}
