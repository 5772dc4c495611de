package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/config"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Pagination: &config.PaginationConfig{
			DefaultLimit: 50,
			MaxLimit:     100,
		},
	}
}

// expectTx makes txManager run the callback against a fresh mock factory
// prepared by setup, returning whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
