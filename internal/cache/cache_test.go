package cache_test

import (
	"testing"
	"time"

	"github.com/BerryBytes/ccactl/internal/cache"
	"github.com/BerryBytes/ccactl/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(expiration time.Time) *models.CachedCredentials {
	return &models.CachedCredentials{
		Credentials: models.AWSCredentials{
			AccessKeyID:     "AKIAEXAMPLE",
			SecretAccessKey: "secret",
			SessionToken:    "session-token",
			Expiration:      expiration.UnixMilli(),
		},
		AccessToken: "access-token",
		CachedAt:    time.Now().UTC(),
		SSOStartURL: "https://example.awsapps.com/start",
		SSORegion:   "us-east-1",
		AccountID:   "123456789012",
		RoleName:    "CCA-CLI-Access",
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := cache.NewStore(fs, "/home/user/.ccactl")

	record := testRecord(time.Now().Add(time.Hour))
	require.NoError(t, store.Save(record))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, record.Credentials.AccessKeyID, loaded.Credentials.AccessKeyID)
	assert.Equal(t, record.Credentials.Expiration, loaded.Credentials.Expiration)
	assert.Equal(t, record.AccountID, loaded.AccountID)
	assert.Equal(t, record.RoleName, loaded.RoleName)
}

func TestLoadReturnsNilWhenAbsent(t *testing.T) {
	store := cache.NewStore(afero.NewMemMapFs(), "/home/user/.ccactl")

	loaded, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestIsValidBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := afero.NewMemMapFs()
	store := cache.NewStoreWithClock(fs, "/home/user/.ccactl", func() time.Time { return now })

	tests := []struct {
		name       string
		expiration time.Time
		valid      bool
	}{
		{"expires in an hour", now.Add(time.Hour), true},
		{"expires in a millisecond", now.Add(time.Millisecond), true},
		{"expires exactly now", now, false},
		{"expired a millisecond ago", now.Add(-time.Millisecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, store.IsValid(testRecord(tt.expiration)))
		})
	}
}

func TestIsValidNilRecord(t *testing.T) {
	store := cache.NewStore(afero.NewMemMapFs(), "/home/user/.ccactl")
	assert.False(t, store.IsValid(nil))
}

func TestCurrentTreatsExpiredAsNotAuthenticated(t *testing.T) {
	now := time.Now().UTC()
	fs := afero.NewMemMapFs()
	store := cache.NewStoreWithClock(fs, "/home/user/.ccactl", func() time.Time { return now })

	// Never written.
	_, err := store.Current()
	assert.ErrorIs(t, err, cache.ErrNotAuthenticated)

	// Written but expired one millisecond ago: reported identically.
	require.NoError(t, store.Save(testRecord(now.Add(-time.Millisecond))))
	_, err = store.Current()
	assert.ErrorIs(t, err, cache.ErrNotAuthenticated)

	// Valid record comes back.
	require.NoError(t, store.Save(testRecord(now.Add(time.Hour))))
	record, err := store.Current()
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := cache.NewStore(fs, "/home/user/.ccactl")

	require.NoError(t, store.Save(testRecord(time.Now().Add(time.Hour))))
	require.NoError(t, store.Invalidate())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Second invalidation is a no-op.
	assert.NoError(t, store.Invalidate())
}

func TestSaveOverwritesWholesale(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := cache.NewStore(fs, "/home/user/.ccactl")

	first := testRecord(time.Now().Add(time.Hour))
	first.RoleName = "OldRole"
	require.NoError(t, store.Save(first))

	second := testRecord(time.Now().Add(2 * time.Hour))
	second.RoleName = "NewRole"
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "NewRole", loaded.RoleName)
	assert.Equal(t, second.Credentials.Expiration, loaded.Credentials.Expiration)
}
