package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shopdesk/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func sampleProduct(owner string) domain.Product {
	return domain.Product{
		Name:        "Lamp",
		Price:       19.5,
		Description: "Desk lamp",
		Category:    "Home",
		OwnerEmail:  owner,
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_CreatesNestedDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitialize_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UserStore().Create(ctx, "a@x.com", "pw"))

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	user, err := store.UserStore().Get(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.UserStore().Create(ctx, "a@x.com", "pw"))
	_, err = first.ProductStore().Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	user, err := second.UserStore().Get(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	products, err := second.ProductStore().ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestNewStore_AdoptsExistingTables(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// A database written before schema versioning existed.
	raw, err := sql.Open("sqlite", filepath.Join(dir, DatabaseFile))
	require.NoError(t, err)
	_, err = raw.Exec(`
		CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, email TEXT UNIQUE NOT NULL, password TEXT NOT NULL);
		CREATE TABLE session (id INTEGER PRIMARY KEY AUTOINCREMENT, email TEXT);
		INSERT INTO users (email, password) VALUES ('old@x.com', 'secret');
	`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	user, err := store.UserStore().Get(ctx, "old@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "secret", user.Password)

	_, err = store.ProductStore().Add(ctx, sampleProduct("old@x.com"))
	assert.NoError(t, err)
}

func TestNewStore_FailsWhenDataDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := NewStore(file)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestClose_OperationsFailUnavailable(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	ctx := context.Background()

	err = store.UserStore().Create(ctx, "a@x.com", "pw")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = store.SessionStore().Current(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = store.ProductStore().List(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	assert.ErrorIs(t, store.Initialize(ctx), domain.ErrStoreUnavailable)
	assert.NoError(t, store.Close())
}

// ==================== UserStore Tests ====================

func TestUserStore_CreateAndGet(t *testing.T) {
	store := setupTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, "a@x.com", "pw1"))

	user, err := users.Get(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Positive(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "pw1", user.Password)
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	store := setupTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, "a@x.com", "pw1"))

	err := users.Create(ctx, "a@x.com", "pw2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "UNIQUE")

	user, err := users.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "pw1", user.Password)
}

func TestUserStore_GetAbsent(t *testing.T) {
	store := setupTestStore(t)

	user, err := store.UserStore().Get(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserStore_GetIsCaseSensitive(t *testing.T) {
	store := setupTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, "a@x.com", "pw"))

	user, err := users.Get(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.Nil(t, user)
}

// ==================== SessionStore Tests ====================

func TestSessionStore_EmptyInitially(t *testing.T) {
	store := setupTestStore(t)

	session, err := store.SessionStore().Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStore_SetReplaces(t *testing.T) {
	store := setupTestStore(t)
	sessions := store.SessionStore()
	ctx := context.Background()

	require.NoError(t, sessions.Set(ctx, "a@x.com"))
	require.NoError(t, sessions.Set(ctx, "b@x.com"))

	session, err := sessions.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "b@x.com", session.Email)

	var count int
	store.mu.Lock()
	err = store.db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&count)
	store.mu.Unlock()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSessionStore_ClearIdempotent(t *testing.T) {
	store := setupTestStore(t)
	sessions := store.SessionStore()
	ctx := context.Background()

	require.NoError(t, sessions.Set(ctx, "a@x.com"))
	require.NoError(t, sessions.Clear(ctx))
	require.NoError(t, sessions.Clear(ctx))

	session, err := sessions.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionStore_DoesNotRequireRegisteredUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SessionStore().Set(ctx, "ghost@x.com"))

	session, err := store.SessionStore().Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ghost@x.com", session.Email)
}

// ==================== ProductStore Tests ====================

func TestProductStore_AddAndListByOwner(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	id, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)
	assert.Positive(t, id)

	owned, err := products.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, id, owned[0].ID)
	assert.Equal(t, "Lamp", owned[0].Name)
	assert.InDelta(t, 19.5, owned[0].Price, 0.0001)
	assert.Equal(t, "Desk lamp", owned[0].Description)
	assert.Equal(t, "Home", owned[0].Category)
	assert.Equal(t, "a@x.com", owned[0].OwnerEmail)

	other, err := products.ListByOwner(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestProductStore_AddDoesNotValidate(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.ProductStore().Add(context.Background(), domain.Product{OwnerEmail: "a@x.com"})
	assert.NoError(t, err)
}

func TestProductStore_ListAllOwners(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	_, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)
	_, err = products.Add(ctx, sampleProduct("b@x.com"))
	require.NoError(t, err)

	all, err := products.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductStore_ListEmpty(t *testing.T) {
	store := setupTestStore(t)

	all, err := store.ProductStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestProductStore_GetScopedToOwner(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	id, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)

	got, err := products.Get(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)

	_, err = products.Get(ctx, id, "b@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = products.Get(ctx, id+100, "a@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductStore_UpdateOwned(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	id, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)

	affected, err := products.Update(ctx, domain.Product{
		ID: id, Name: "Lamp XL", Price: 25, Description: "Big lamp", Category: "Home", OwnerEmail: "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := products.Get(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Lamp XL", got.Name)
	assert.InDelta(t, 25.0, got.Price, 0.0001)
	assert.Equal(t, "Big lamp", got.Description)
}

func TestProductStore_UpdateOtherOwnerIsNoop(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	id, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)

	affected, err := products.Update(ctx, domain.Product{
		ID: id, Name: "Stolen", Price: 1, Description: "x", Category: "x", OwnerEmail: "b@x.com",
	})
	require.NoError(t, err)
	assert.Zero(t, affected)

	got, err := products.Get(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)
	assert.Equal(t, "a@x.com", got.OwnerEmail)
}

func TestProductStore_DeleteOwned(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	id, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)

	affected, err := products.Delete(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	owned, err := products.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, owned)

	affected, err = products.Delete(ctx, id, "a@x.com")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestProductStore_DeleteOtherOwnerIsNoop(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	id, err := products.Add(ctx, sampleProduct("a@x.com"))
	require.NoError(t, err)

	affected, err := products.Delete(ctx, id, "b@x.com")
	require.NoError(t, err)
	assert.Zero(t, affected)

	owned, err := products.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

// ==================== Concurrency Tests ====================

func TestStore_ConcurrentAddsAllPersist(t *testing.T) {
	store := setupTestStore(t)
	products := store.ProductStore()
	ctx := context.Background()

	const workers = 8
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := products.Add(ctx, sampleProduct("a@x.com")); err != nil {
					errs <- err
				}
				if _, err := products.ListByOwner(ctx, "a@x.com"); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	owned, err := products.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, owned, workers*perWorker)

	seen := make(map[int64]bool)
	for _, p := range owned {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

// ==================== Error Classification Tests ====================

func TestClassify_PassesThroughStoreErrors(t *testing.T) {
	original := &domain.StoreError{Op: "x", Kind: domain.ErrDuplicateEmail}

	got := classify("y", original)
	assert.Same(t, original, got)
}

func TestClassify_NotFound(t *testing.T) {
	err := classify("getting product", domain.ErrNotFound)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "getting product: not found", err.Error())
}

func TestClassify_GenericIsIO(t *testing.T) {
	err := classify("listing products", errors.New("disk I/O error"))

	assert.ErrorIs(t, err, domain.ErrStoreIO)
	assert.Equal(t, "listing products: disk I/O error", err.Error())
}

func TestClassify_ConnDoneIsUnavailable(t *testing.T) {
	err := classify("listing products", sql.ErrConnDone)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestIsUniqueViolation_NonDriverError(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("UNIQUE constraint failed")))
}
