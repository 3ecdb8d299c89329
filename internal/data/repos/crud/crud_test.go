package crud_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aggtest "github.com/yungbote/mystore-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/mystore-backend/internal/data/repos/catalog"
	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

func TestTableWritesGoThroughRunnerAndHooks(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	runner := &aggtest.InjectedTxRunner{}
	hooks := &aggtest.HooksRecorder{}
	repo := catalog.NewCatalogRepo(db, testutil.Logger(t), crud.WithRunner(runner), crud.WithHooks(hooks))

	main, err := repo.Add(ctx, nil, store.NewCatalog("Main"))
	require.NoError(t, err)
	require.NotZero(t, main.CatalogID)

	_, err = repo.Add(ctx, nil, store.NewCatalog(""))
	assert.True(t, domainagg.IsCode(err, domainagg.CodeValidation), "got %v", err)

	_, err = repo.Add(ctx, nil, main)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeAlreadyExists), "got %v", err)

	runner.FailCommit = errors.New("disk I/O error")
	_, err = repo.Update(ctx, nil, main)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeInternal), "got %v", err)

	assert.Equal(t, 1, runner.CommitCalls)
	assert.Equal(t, 3, runner.RollbackCalls)
	assert.Equal(t, []string{
		"catalogs.add=success",
		"catalogs.add=validation",
		"catalogs.add=already_exists",
		"catalogs.update=internal",
	}, hooks.Statuses())
	assert.Empty(t, hooks.Conflicts)
}

func TestTableJoinsOuterTransaction(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	runner := &aggtest.InjectedTxRunner{}
	repo := catalog.NewCatalogRepo(db, testutil.Logger(t), crud.WithRunner(runner))

	_, err := repo.Add(context.Background(), tx, store.NewCatalog("Main"))
	require.NoError(t, err)
	assert.Equal(t, 1, runner.Joined)
}

func TestTableRetryableBeginFailure(t *testing.T) {
	db := testutil.DB(t)
	hooks := &aggtest.HooksRecorder{}
	runner := &aggtest.InjectedTxRunner{FailBegin: context.DeadlineExceeded}
	repo := catalog.NewCatalogRepo(db, testutil.Logger(t), crud.WithRunner(runner), crud.WithHooks(hooks))

	_, err := repo.Add(context.Background(), nil, store.NewCatalog("Main"))
	assert.True(t, domainagg.IsCode(err, domainagg.CodeRetryable), "got %v", err)
	assert.Equal(t, []string{"catalogs.add"}, hooks.Retries)
	assert.Zero(t, testutil.Count(t, db, &store.Catalog{}))
}
