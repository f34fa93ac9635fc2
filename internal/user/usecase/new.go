package usecase

import (
	"multi-calendar-sync/internal/user/repository"
	"multi-calendar-sync/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
