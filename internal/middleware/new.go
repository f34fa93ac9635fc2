package middleware

import (
	"multi-calendar-sync/config"
	"multi-calendar-sync/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg *config.Config
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:   l,
		cfg: cfg,
	}
}
