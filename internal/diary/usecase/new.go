package usecase

import (
	"github.com/KN-gho/timebudget/internal/diary/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/log"
)

// implUseCase is the private implementation of diary.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users userRepo.Repository
	l     log.Logger
}

// New creates a new diary UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		l:     l,
	}
}
