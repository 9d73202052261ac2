package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KN-gho/timebudget/internal/schedule"
	"github.com/KN-gho/timebudget/internal/schedule/repository"
	userRepo "github.com/KN-gho/timebudget/internal/user/repository"
	"github.com/KN-gho/timebudget/pkg/log"
	"github.com/KN-gho/timebudget/pkg/openai"
	"github.com/KN-gho/timebudget/pkg/weather"
)

const (
	// forecastCacheSize bounds the per-city forecast cache.
	forecastCacheSize = 64
	// forecastCacheTTL keeps forecasts fresh enough for planning while
	// sparing the upstream API.
	forecastCacheTTL = 30 * time.Minute
)

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	repo    repository.Repository
	users   userRepo.Repository
	weather weather.IWeather
	ai      openai.IOpenAI
	cache   *expirable.LRU[string, []schedule.DayForecast]
	l       log.Logger

	// now is swapped in tests to pin "today".
	now func() time.Time
}

// New creates a new schedule UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, w weather.IWeather, ai openai.IOpenAI, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		users:   users,
		weather: w,
		ai:      ai,
		cache:   expirable.NewLRU[string, []schedule.DayForecast](forecastCacheSize, nil, forecastCacheTTL),
		l:       l,
		now:     time.Now,
	}
}
