package impl

import (
	"blog/config"
	"blog/internal/usecase"
)

const (
	fallbackPageLimit    = 50
	fallbackMaxPageLimit = 100
)

type pageLimits struct {
	defaultLimit int
	maxLimit     int
}

func newPageLimits(cfg *config.Config) pageLimits {
	limits := pageLimits{defaultLimit: fallbackPageLimit, maxLimit: fallbackMaxPageLimit}
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultLimit > 0 {
			limits.defaultLimit = cfg.Pagination.DefaultLimit
		}
		if cfg.Pagination.MaxLimit > 0 {
			limits.maxLimit = cfg.Pagination.MaxLimit
		}
	}

	return limits
}

// normalize clamps skip to >= 0 and limit to (0, maxLimit], using the default for unset limits.
func (l pageLimits) normalize(page usecase.PageInput) (skip, limit int) {
	skip = max(page.Skip, 0)

	limit = page.Limit
	if limit <= 0 {
		limit = l.defaultLimit
	}

	return skip, min(limit, l.maxLimit)
}
