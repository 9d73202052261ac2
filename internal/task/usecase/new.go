package usecase

import (
	"time"

	"github.com/KN-gho/timebudget/internal/task/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/deadline"
	"github.com/KN-gho/timebudget/pkg/log"
	"github.com/KN-gho/timebudget/pkg/openai"
	"github.com/KN-gho/timebudget/pkg/pressure"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	users    userRepo.Repository
	ai       openai.IOpenAI
	resolver *deadline.Resolver
	calc     *pressure.Calculator
	l        log.Logger

	// now is swapped in tests to pin "today".
	now func() time.Time
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, ai openai.IOpenAI, resolver *deadline.Resolver, calc *pressure.Calculator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		users:    users,
		ai:       ai,
		resolver: resolver,
		calc:     calc,
		l:        l,
		now:      time.Now,
	}
}
