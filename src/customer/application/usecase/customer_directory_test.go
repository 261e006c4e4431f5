package usecase

import (
	"context"
	"testing"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/cache"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryFixture() (*ListCustomersUseCase, *AddCustomerUseCase, *RemoveCustomerUseCase) {
	settings := persistence.NewSettingMemoryRepository()
	directory := cache.NewCustomerCache()
	return NewListCustomersUseCase(settings, directory),
		NewAddCustomerUseCase(settings, directory),
		NewRemoveCustomerUseCase(settings, directory)
}

func TestListCustomersEmptyDirectory(t *testing.T) {
	listUC, _, _ := newDirectoryFixture()

	names, err := listUC.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAddCustomerKeepsInsertionOrder(t *testing.T) {
	listUC, addUC, _ := newDirectoryFixture()
	ctx := context.Background()

	_, err := addUC.Execute(ctx, "Doña Chela")
	require.NoError(t, err)
	_, err = addUC.Execute(ctx, "  Don Memo  ")
	require.NoError(t, err)

	names, err := listUC.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Doña Chela", "Don Memo"}, names)
}

func TestAddCustomerRejectsDuplicatesAndEmpty(t *testing.T) {
	_, addUC, _ := newDirectoryFixture()
	ctx := context.Background()

	_, err := addUC.Execute(ctx, "Doña Chela")
	require.NoError(t, err)

	_, err = addUC.Execute(ctx, "doña chela")
	assert.ErrorIs(t, err, entity.ErrCustomerAlreadyExists)

	_, err = addUC.Execute(ctx, "   ")
	assert.ErrorIs(t, err, entity.ErrCustomerNameEmpty)
}

func TestRemoveCustomer(t *testing.T) {
	listUC, addUC, removeUC := newDirectoryFixture()
	ctx := context.Background()

	_, err := addUC.Execute(ctx, "Doña Chela")
	require.NoError(t, err)
	_, err = addUC.Execute(ctx, "Don Memo")
	require.NoError(t, err)

	remaining, err := removeUC.Execute(ctx, "Doña Chela")
	require.NoError(t, err)
	assert.Equal(t, []string{"Don Memo"}, remaining)

	_, err = removeUC.Execute(ctx, "Doña Chela")
	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)

	names, err := listUC.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Don Memo"}, names)
}
