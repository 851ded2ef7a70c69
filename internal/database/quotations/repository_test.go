package quotations

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := filepath.Join(t.TempDir(), "quotations.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Quotation{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}

	return repo, cleanup
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create(&entities.Quotation{QuotationText: "Talk is cheap. Show me the code.", Author: "Linus Torvalds"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	quotation, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Talk is cheap. Show me the code.", quotation.QuotationText)
	assert.Equal(t, "Linus Torvalds", quotation.Author)
}

func TestRepository_GetAll(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Create(&entities.Quotation{QuotationText: "one", Author: "A"})
	require.NoError(t, err)
	_, err = repo.Create(&entities.Quotation{QuotationText: "two", Author: "B"})
	require.NoError(t, err)

	all, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "one", all[0].QuotationText)
	assert.Equal(t, "two", all[1].QuotationText)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create(&entities.Quotation{QuotationText: "draft", Author: "A"})
	require.NoError(t, err)

	updated, err := repo.Update(&entities.Quotation{ID: created.ID, QuotationText: "final", Author: "B"})

	require.NoError(t, err)
	assert.Equal(t, "final", updated.QuotationText)
	assert.Equal(t, "B", updated.Author)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Update(&entities.Quotation{ID: 42, QuotationText: "x", Author: "y"})

	assert.ErrorIs(t, err, database.ErrNotFound)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_Delete(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create(&entities.Quotation{QuotationText: "bye", Author: "A"})
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	deleted, err = repo.Delete(created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
