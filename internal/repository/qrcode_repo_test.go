package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"qrgen/internal/database"
	"qrgen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.QRCode{}))

	return db
}

func newCode(userID int64, title string, createdAt time.Time) *domain.QRCode {
	return &domain.QRCode{
		Title:   title,
		Content: "https://example.com",
		Type:    domain.TypeURL,
		Customization: domain.Customization{
			Color:                "#000000",
			BackgroundColor:      "#ffffff",
			Size:                 200,
			ErrorCorrectionLevel: domain.ECLevelMedium,
		},
		QRCodeData: "data:image/png;base64,xxxx",
		UserID:     userID,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func TestGetByUserID_PaginationAndOrder(t *testing.T) {
	db := setupDB(t)
	repo := NewQRCodeRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		qr := newCode(1, fmt.Sprintf("code-%02d", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Create(ctx, qr))
	}
	// another user's records must never show up
	require.NoError(t, repo.Create(ctx, newCode(2, "other", base)))

	codes, total, err := repo.GetByUserID(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, codes, 10)
	assert.Equal(t, "code-24", codes[0].Title) // newest first

	codes, total, err = repo.GetByUserID(ctx, 1, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, codes, 5)

	// out-of-range page is empty, not an error
	codes, _, err = repo.GetByUserID(ctx, 1, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestGetByIDAndUserID_OwnerScoped(t *testing.T) {
	db := setupDB(t)
	repo := NewQRCodeRepository(db)
	ctx := context.Background()

	qr := newCode(1, "mine", time.Now())
	require.NoError(t, repo.Create(ctx, qr))

	got, err := repo.GetByIDAndUserID(ctx, qr.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)

	// same id, wrong owner: looks exactly like not-found
	_, err = repo.GetByIDAndUserID(ctx, qr.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteByIDAndUserID(t *testing.T) {
	db := setupDB(t)
	repo := NewQRCodeRepository(db)
	ctx := context.Background()

	qr := newCode(1, "doomed", time.Now())
	require.NoError(t, repo.Create(ctx, qr))

	require.ErrorIs(t, repo.DeleteByIDAndUserID(ctx, qr.ID, 2), gorm.ErrRecordNotFound)
	require.NoError(t, repo.DeleteByIDAndUserID(ctx, qr.ID, 1))

	_, err := repo.GetByIDAndUserID(ctx, qr.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIncrementDownloadCount(t *testing.T) {
	db := setupDB(t)
	repo := NewQRCodeRepository(db)
	ctx := context.Background()

	qr := newCode(1, "counted", time.Now())
	require.NoError(t, repo.Create(ctx, qr))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementDownloadCount(ctx, qr.ID, 1))
	}

	got, err := repo.GetByIDAndUserID(ctx, qr.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.DownloadCount)

	assert.ErrorIs(t, repo.IncrementDownloadCount(ctx, qr.ID, 2), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.IncrementDownloadCount(ctx, 9999, 1), gorm.ErrRecordNotFound)
}

func TestIncrementDownloadCount_ConcurrentNoLostUpdates(t *testing.T) {
	db := setupDB(t)

	// a fresh connection to an in-memory sqlite DSN gets its own database;
	// pin the pool to one connection so every goroutine hits the same store
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewQRCodeRepository(db)
	ctx := context.Background()

	qr := newCode(1, "contended", time.Now())
	require.NoError(t, repo.Create(ctx, qr))

	const n = 20
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementDownloadCount(ctx, qr.ID, 1)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.GetByIDAndUserID(ctx, qr.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.DownloadCount)
}
