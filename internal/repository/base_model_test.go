package repository

import (
	"context"
	"testing"
	"time"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Time columns carry no explicit column type so they scan back on every
// dialect the repositories run against, the test database included.
func TestTimeColumnsScanBackFromDatabase(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "clock@test.com")

	var reloaded model.User
	require.NoError(t, repo.DB.First(&reloaded, user.ID).Error)
	require.NotNil(t, reloaded.CreatedAt)
	assert.False(t, reloaded.CreatedAt.IsZero())
	require.NotNil(t, reloaded.UpdatedAt)

	created, err := repo.PasswordReset.CreateCode(ctx, nil, user.ID, "424242", 10*time.Minute)
	require.NoError(t, err)

	var reset model.PasswordResetCode
	require.NoError(t, repo.DB.First(&reset, created.ID).Error)
	assert.WithinDuration(t, created.ExpiresAt, reset.ExpiresAt, time.Second)
}
