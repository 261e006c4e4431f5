package usecase

import (
	"context"
	"testing"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/infrastructure/persistence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportMenuRejectsEmptyFile(t *testing.T) {
	uc := NewImportMenuUseCase(persistence.NewMenuItemMemoryRepository())

	_, err := uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrImportWithoutItems)
}

func TestImportMenuAssignsFreshIdentity(t *testing.T) {
	repo := persistence.NewMenuItemMemoryRepository()
	uc := NewImportMenuUseCase(repo)

	originalID := uuid.New()
	items := []*entity.MenuItem{
		{ID: originalID, Name: "Gorditas", Category: entity.CategoryAntojitos, BasePrice: decimal.NewFromInt(25)},
	}

	result, err := uc.Execute(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ImportedCount)

	saved, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.NotEqual(t, originalID, saved[0].ID)
	assert.Equal(t, "Gorditas", saved[0].Name)
}

func TestImportMenuAccumulatesItemErrors(t *testing.T) {
	repo := persistence.NewMenuItemMemoryRepository()
	uc := NewImportMenuUseCase(repo)

	items := []*entity.MenuItem{
		{Name: "", Category: entity.CategoryAntojitos, BasePrice: decimal.NewFromInt(25)},
		{Name: "Gorditas", Category: entity.CategoryAntojitos, BasePrice: decimal.NewFromInt(25)},
		{Name: "Raro", Category: "postres", BasePrice: decimal.NewFromInt(30)},
		{Name: "Negativo", Category: entity.CategoryBebidas, BasePrice: decimal.NewFromInt(-5)},
	}

	result, err := uc.Execute(context.Background(), items)
	require.Error(t, err)
	require.NotNil(t, result)

	// Los válidos entran aunque haya inválidos, y cada falla se reporta
	assert.Equal(t, 1, result.ImportedCount)
	assert.ErrorIs(t, err, entity.ErrNameRequired)
	assert.ErrorIs(t, err, entity.ErrInvalidCategory)
	assert.ErrorIs(t, err, entity.ErrInvalidPrice)

	saved, listErr := repo.ListAll(context.Background())
	require.NoError(t, listErr)
	assert.Len(t, saved, 1)
}
