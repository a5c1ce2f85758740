package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/societyerp/backend/internal/domain/shared"
	"github.com/societyerp/backend/internal/domain/society"
	"github.com/societyerp/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProjectTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProjectModel{})
	require.NoError(t, err)

	return db
}

func newStoredProject(t *testing.T, name string) *society.Project {
	project, err := society.NewProject(name, "12 Lake Road")
	require.NoError(t, err)
	return project
}

func TestProjectRepository_SaveAndFind(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	t.Run("saves a project with bank details and reads it back", func(t *testing.T) {
		project := newStoredProject(t, "Green Acres")
		project.SetBankDetails(society.BankDetails{
			BankName:      "State Bank",
			AccountNumber: "00112233",
			IFSCCode:      "SBIN0001234",
			BranchName:    "Market Road",
		})

		err := repo.Save(ctx, project)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "Green Acres", found.Name)
		assert.Equal(t, "12 Lake Road", found.Address)
		assert.Equal(t, "State Bank", found.BankDetails.BankName)
		assert.Equal(t, "SBIN0001234", found.BankDetails.IFSCCode)
	})

	t.Run("returns not found for non-existent ID", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestProjectRepository_Update(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	t.Run("persists name and address changes", func(t *testing.T) {
		project := newStoredProject(t, "Old Name")
		require.NoError(t, repo.Save(ctx, project))

		require.NoError(t, project.Update("New Name", "45 Hill Street"))
		require.NoError(t, repo.Update(ctx, project))

		found, err := repo.FindByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", found.Name)
		assert.Equal(t, "45 Hill Street", found.Address)
	})

	t.Run("returns not found for an unsaved project", func(t *testing.T) {
		project := newStoredProject(t, "Ghost")
		err := repo.Update(ctx, project)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestProjectRepository_FindAll(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newStoredProject(t, "Willow Park")))
	require.NoError(t, repo.Save(ctx, newStoredProject(t, "Amber Court")))
	require.NoError(t, repo.Save(ctx, newStoredProject(t, "Maple Grove")))

	projects, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "Amber Court", projects[0].Name)
	assert.Equal(t, "Maple Grove", projects[1].Name)
	assert.Equal(t, "Willow Park", projects[2].Name)
}

func TestProjectRepository_ExistsByID(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project := newStoredProject(t, "Green Acres")
	require.NoError(t, repo.Save(ctx, project))

	exists, err := repo.ExistsByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := setupProjectTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project := newStoredProject(t, "Green Acres")
	require.NoError(t, repo.Save(ctx, project))

	require.NoError(t, repo.Delete(ctx, project.ID))

	_, err := repo.FindByID(ctx, project.ID)
	assert.Equal(t, shared.ErrNotFound, err)

	err = repo.Delete(ctx, project.ID)
	assert.Equal(t, shared.ErrNotFound, err)
}
