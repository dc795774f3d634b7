package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/models/db_models"
	"fittrack/internal/testutil"
	"fittrack/pkg/utils"
)

func TestAccountRepository_InsertAndFind(t *testing.T) {
	repo := NewAccountRepository(testutil.NewDB(t))
	ctx := context.Background()

	account := &db_models.Account{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"}
	require.NoError(t, repo.Insert(ctx, account))

	byEmail, err := repo.FindByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, account.ID, byEmail.ID)

	byID, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Ann", byID.Name)

	missing, err := repo.FindById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountRepository_DuplicateEmailIsRejected(t *testing.T) {
	repo := NewAccountRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &db_models.Account{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}))
	err := repo.Insert(ctx, &db_models.Account{Name: "Ann 2", Email: "ann@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestAccountRepository_UpdateFields(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	ann := testutil.CreateAccount(t, db, "ann@x.com")
	testutil.CreateAccount(t, db, "bob@x.com")

	updated, err := repo.UpdateFields(ctx, ann.ID, map[string]interface{}{"name": "Ann B."})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ann B.", updated.Name)

	_, err = repo.UpdateFields(ctx, ann.ID, map[string]interface{}{"email": "bob@x.com"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	missing, err := repo.UpdateFields(ctx, uuid.New(), map[string]interface{}{"name": "nobody"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
