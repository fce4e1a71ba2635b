package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/giorgi26/Planner/internal/task/repository"
	"github.com/giorgi26/Planner/pkg/datemath"
	pkgLog "github.com/giorgi26/Planner/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
	newID    func() string
}

// New creates a new planner UseCase instance. dateMath fixes the local
// timezone used for day keys and deadlines.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// clock samples the current instant in the planner's timezone.
func (uc *implUseCase) clock() time.Time {
	return uc.now().In(uc.dateMath.Location())
}
