package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/papermapper/papermapper/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeAttachmentStore records deletes so tests can assert best-effort
// cleanup without an object store.
type fakeAttachmentStore struct {
	mu      sync.Mutex
	base    string
	deleted []string
	fail    bool
}

func newFakeAttachmentStore() *fakeAttachmentStore {
	return &fakeAttachmentStore{base: "https://pub-test.r2.dev/"}
}

func (f *fakeAttachmentStore) URL(key string) string {
	return f.base + key
}

func (f *fakeAttachmentStore) ExtractKeyFromURL(url string) string {
	if len(url) <= len(f.base) || url[:len(f.base)] != f.base {
		return ""
	}
	return url[len(f.base):]
}

func (f *fakeAttachmentStore) Delete(_ context.Context, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return false
	}
	f.deleted = append(f.deleted, key)
	return true
}

func (f *fakeAttachmentStore) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func newTestRepository(t *testing.T) (*Repository, *fakeAttachmentStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Citation{},
		&model.SourceMaterial{},
		&model.Question{},
		&model.Insight{},
		&model.Thought{},
		&model.Claim{},
		&model.Card{},
		&model.CardLink{},
		&model.OutlineSection{},
		&model.OutlineCardPlacement{},
		&model.UserCustomOption{},
		&model.PasswordResetCode{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	store := newFakeAttachmentStore()
	return NewRepository(db, zap.NewNop().Sugar(), store), store
}

func seedUser(t *testing.T, repo *Repository, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email, HashedPassword: "x"}
	if err := repo.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedProject(t *testing.T, repo *Repository, userID uint) *model.Project {
	t.Helper()

	project, err := repo.Project.Create(context.Background(), nil, &model.Project{
		Name:   "Test Paper",
		UserID: userID,
	})
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}
