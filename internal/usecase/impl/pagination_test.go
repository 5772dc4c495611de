package impl

import (
	"testing"

	"blog/config"
	"blog/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestPageLimits_Normalize(t *testing.T) {
	limits := newPageLimits(&config.Config{Pagination: &config.PaginationConfig{DefaultLimit: 20, MaxLimit: 40}})

	tests := []struct {
		name      string
		page      usecase.PageInput
		wantSkip  int
		wantLimit int
	}{
		{"zero value uses default", usecase.PageInput{}, 0, 20},
		{"negative values", usecase.PageInput{Skip: -1, Limit: -5}, 0, 20},
		{"within bounds", usecase.PageInput{Skip: 5, Limit: 30}, 5, 30},
		{"clamped to max", usecase.PageInput{Skip: 0, Limit: 41}, 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := limits.normalize(tt.page)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPageLimits_Fallbacks(t *testing.T) {
	limits := newPageLimits(nil)

	assert.Equal(t, fallbackPageLimit, limits.defaultLimit)
	assert.Equal(t, fallbackMaxPageLimit, limits.maxLimit)
}
