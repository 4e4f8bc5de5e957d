package content

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	domain "github.com/BruksfildServices01/zaban-academy/internal/domain/content"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/models"
	"github.com/BruksfildServices01/zaban-academy/internal/testutil/memrepo"
	ucPayment "github.com/BruksfildServices01/zaban-academy/internal/usecase/payment"
)

// ======================================================
// Fakes
// ======================================================

type fakeStore struct {
	statCalls int
	statErr   error
	lastPut   string
}

func (s *fakeStore) PresignUpload(_ context.Context, key, contentType string) (string, time.Time, error) {
	s.lastPut = key + "|" + contentType
	return "https://s3.test/put/" + key, time.Unix(1700003600, 0), nil
}

func (s *fakeStore) PresignDownload(_ context.Context, key string) (string, time.Time, error) {
	return "https://s3.test/get/" + key, time.Unix(1700003600, 0), nil
}

func (s *fakeStore) Stat(_ context.Context, key string) (*domain.ObjectInfo, error) {
	s.statCalls++
	if s.statErr != nil {
		return nil, s.statErr
	}
	return &domain.ObjectInfo{Key: key, Size: 2048, ContentType: "video/mp4"}, nil
}

type fakeCache struct {
	mu          sync.Mutex
	list        []models.Content
	hasList     bool
	meta        map[string]*domain.ObjectInfo
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{meta: map[string]*domain.ObjectInfo{}}
}

func (c *fakeCache) GetList(context.Context) ([]models.Content, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list, c.hasList
}

func (c *fakeCache) SetList(_ context.Context, items []models.Content) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list, c.hasList = items, true
}

func (c *fakeCache) InvalidateList(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list, c.hasList = nil, false
	c.invalidated++
}

func (c *fakeCache) GetObjectInfo(_ context.Context, key string) (*domain.ObjectInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.meta[key]
	return info, ok
}

func (c *fakeCache) SetObjectInfo(_ context.Context, info *domain.ObjectInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.meta[info.Key] = info
}

func seed(t *testing.T, store *memrepo.Store, c *models.Content) *models.Content {
	t.Helper()
	require.NoError(t, store.Contents.Create(context.Background(), c))
	return c
}

func grant(t *testing.T, store *memrepo.Store, userID, contentID uint) {
	t.Helper()
	ctx := context.Background()
	p, err := ucPayment.NewCreatePayment(store.Payments, nil).Execute(ctx, ucPayment.CreatePaymentInput{
		UserID: userID, ContentID: contentID, TrackingCode: "TRK",
	})
	require.NoError(t, err)
	_, err = ucPayment.NewUpdatePaymentStatus(store.Payments, nil).Execute(ctx, ucPayment.UpdatePaymentStatusInput{
		ID: p.ID, Status: "approved",
	})
	require.NoError(t, err)
}

// ======================================================
// Access
// ======================================================

func TestCheckAccess(t *testing.T) {
	store := memrepo.New()
	free := seed(t, store, &models.Content{Title: "Free", Type: "article"})
	premium := seed(t, store, &models.Content{Title: "Premium", Type: "video", IsPremium: true, Price: 1000})
	grant(t, store, 7, premium.ID)

	buyer := &auth.Principal{UserID: 7, Role: auth.RoleUser}
	other := &auth.Principal{UserID: 8, Role: auth.RoleUser}
	admin := &auth.Principal{UserID: 1, Role: auth.RoleAdmin}

	cases := []struct {
		name    string
		p       *auth.Principal
		content *models.Content
		want    bool
	}{
		{"free anonymous", nil, free, true},
		{"free user", other, free, true},
		{"premium anonymous", nil, premium, false},
		{"premium admin", admin, premium, true},
		{"premium buyer", buyer, premium, true},
		{"premium non buyer", other, premium, false},
	}

	uc := NewCheckAccess(store.Contents)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tc.p, tc.content)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPurchaseScenario_EndToEnd(t *testing.T) {
	store := memrepo.New()
	ctx := context.Background()
	c := seed(t, store, &models.Content{Title: "Speaking", Type: "course", IsPremium: true, Price: 490000})
	student := &auth.Principal{UserID: 7, Role: auth.RoleUser}
	access := NewCheckAccess(store.Contents)

	p, err := ucPayment.NewCreatePayment(store.Payments, nil).Execute(ctx, ucPayment.CreatePaymentInput{
		UserID: student.UserID, ContentID: c.ID, TrackingCode: "123456",
	})
	require.NoError(t, err)

	ok, err := access.Execute(ctx, student, c)
	require.NoError(t, err)
	assert.False(t, ok)

	approve := ucPayment.NewUpdatePaymentStatus(store.Payments, nil)
	for i := 0; i < 2; i++ {
		_, err = approve.Execute(ctx, ucPayment.UpdatePaymentStatusInput{ID: p.ID, Status: "approved", ActorID: 1})
		require.NoError(t, err)
	}

	ok, err = access.Execute(ctx, student, c)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, store.PurchaseCount(p.ID))

	mine, err := NewListMyPurchases(store.Contents).Execute(ctx, student.UserID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Content)
	assert.Equal(t, "Speaking", mine[0].Content.Title)
}

// ======================================================
// Catalog
// ======================================================

func TestListContent_UsesCache(t *testing.T) {
	store := memrepo.New()
	cache := newFakeCache()
	seed(t, store, &models.Content{Title: "One", Type: "video"})

	list := NewListContent(store.Contents, cache)
	items, err := list.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, cache.hasList)

	// Writes behind the cache's back stay invisible until invalidation.
	seed(t, store, &models.Content{Title: "Two", Type: "video"})
	items, err = list.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)

	title := "Three"
	_, err = NewCreateContent(store.Contents, cache, nil).Execute(context.Background(), ContentInput{Title: &title}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	items, err = list.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestListContent_HidesPremiumURL(t *testing.T) {
	store := memrepo.New()
	seed(t, store, &models.Content{Title: "Paid", Type: "video", IsPremium: true, Price: 10, URL: "https://cdn/paid.mp4"})
	seed(t, store, &models.Content{Title: "Free", Type: "video", URL: "https://cdn/free.mp4"})

	items, err := NewListContent(store.Contents, nil).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, it := range items {
		assert.True(t, it.HasMedia)
		if it.IsPremium {
			assert.Empty(t, it.URL)
		} else {
			assert.Equal(t, "https://cdn/free.mp4", it.URL)
		}
	}
}

func TestCreateContent_Validation(t *testing.T) {
	store := memrepo.New()
	uc := NewCreateContent(store.Contents, nil, nil)
	str := func(s string) *string { return &s }
	yes := true
	zero := int64(0)
	neg := int64(-5)

	cases := []struct {
		name string
		in   ContentInput
		code string
	}{
		{"missing title", ContentInput{Title: str("  ")}, "missing_title"},
		{"bad type", ContentInput{Title: str("x"), Type: str("podcast")}, "invalid_type"},
		{"bad level", ContentInput{Title: str("x"), Level: str("D1")}, "invalid_level"},
		{"negative price", ContentInput{Title: str("x"), Price: &neg}, "invalid_price"},
		{"premium without price", ContentInput{Title: str("x"), IsPremium: &yes, Price: &zero}, "invalid_price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.in, 1)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestCreateContent_Defaults(t *testing.T) {
	store := memrepo.New()
	title := " Listening "
	level := "b2"
	price := int64(5000)

	c, err := NewCreateContent(store.Contents, nil, nil).Execute(context.Background(), ContentInput{
		Title: &title, Level: &level, Price: &price,
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, "Listening", c.Title)
	assert.Equal(t, "video", c.Type)
	assert.Equal(t, "B2", c.Level)
	assert.Equal(t, int64(0), c.Price, "free content carries no price")
}

func TestUpdateContent_Patch(t *testing.T) {
	store := memrepo.New()
	cache := newFakeCache()
	c := seed(t, store, &models.Content{Title: "Old", Type: "video", Description: "keep"})

	title := "New"
	premium := true
	price := int64(9000)
	got, err := NewUpdateContent(store.Contents, cache, nil).Execute(context.Background(), c.ID, ContentInput{
		Title: &title, IsPremium: &premium, Price: &price,
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "keep", got.Description)
	assert.True(t, got.IsPremium)
	assert.Equal(t, int64(9000), got.Price)
	assert.Equal(t, 1, cache.invalidated)

	_, err = NewUpdateContent(store.Contents, cache, nil).Execute(context.Background(), 999, ContentInput{Title: &title}, 1)
	assert.True(t, httperr.IsBusiness(err, "content_not_found"))
}

func TestDeleteContent(t *testing.T) {
	store := memrepo.New()
	cache := newFakeCache()
	sold := seed(t, store, &models.Content{Title: "Sold", Type: "video", IsPremium: true, Price: 100})
	spare := seed(t, store, &models.Content{Title: "Spare", Type: "video"})
	grant(t, store, 7, sold.ID)

	uc := NewDeleteContent(store.Contents, cache, nil)
	ctx := context.Background()

	err := uc.Execute(ctx, sold.ID, 1)
	assert.True(t, httperr.IsBusiness(err, "content_in_use"))
	assert.Equal(t, 0, cache.invalidated)

	require.NoError(t, uc.Execute(ctx, spare.ID, 1))
	assert.Equal(t, 1, cache.invalidated)

	_, err = store.Contents.Get(ctx, spare.ID)
	assert.True(t, httperr.IsBusiness(err, "content_not_found"))

	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, 0, 1), "missing_id"))
}

// ======================================================
// Media
// ======================================================

func TestIssueUploadLink(t *testing.T) {
	s := &fakeStore{}
	uc := NewIssueUploadLink(s, func(string) string { return "uploads/ab/key.mp4" })

	link, err := uc.Execute(context.Background(), "lesson.mp4", "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "uploads/ab/key.mp4", link.FileKey)
	assert.Equal(t, "https://s3.test/put/uploads/ab/key.mp4", link.UploadURL)
	assert.Equal(t, "uploads/ab/key.mp4|video/mp4", s.lastPut)

	_, err = uc.Execute(context.Background(), "lesson.mp4", "")
	assert.True(t, httperr.IsBusiness(err, "missing_params"))

	_, err = NewIssueUploadLink(nil, nil).Execute(context.Background(), "a.mp4", "video/mp4")
	assert.True(t, httperr.IsBusiness(err, "storage_unavailable"))
}

func TestIssueStreamLink_Gate(t *testing.T) {
	store := memrepo.New()
	c := seed(t, store, &models.Content{Title: "Paid", Type: "video", IsPremium: true, Price: 100, StorageKey: "uploads/ab/x.mp4"})
	uc := NewIssueStreamLink(store.Contents, &fakeStore{}, newFakeCache())
	ctx := context.Background()

	_, err := uc.Execute(ctx, nil, c.ID)
	assert.True(t, httperr.IsBusiness(err, "unauthorized"))
	status, _ := httperr.Lookup("unauthorized")
	assert.Equal(t, 401, status)

	_, err = uc.Execute(ctx, &auth.Principal{UserID: 8, Role: auth.RoleUser}, c.ID)
	assert.True(t, httperr.IsBusiness(err, "purchase_required"))
	status, _ = httperr.Lookup("purchase_required")
	assert.Equal(t, 403, status)

	_, err = uc.Execute(ctx, nil, 999)
	assert.True(t, httperr.IsBusiness(err, "content_not_found"))
}

func TestIssueStreamLink_SignsAndCachesMetadata(t *testing.T) {
	store := memrepo.New()
	c := seed(t, store, &models.Content{Title: "Paid", Type: "video", IsPremium: true, Price: 100, StorageKey: "uploads/ab/x.mp4"})
	grant(t, store, 7, c.ID)
	s := &fakeStore{}
	uc := NewIssueStreamLink(store.Contents, s, newFakeCache())
	buyer := &auth.Principal{UserID: 7, Role: auth.RoleUser}

	for i := 0; i < 3; i++ {
		link, err := uc.Execute(context.Background(), buyer, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://s3.test/get/uploads/ab/x.mp4", link.URL)
		require.NotNil(t, link.ExpiresAt)
		assert.Equal(t, int64(2048), link.Size)
		assert.Equal(t, "video/mp4", link.ContentType)
	}
	assert.Equal(t, 1, s.statCalls)
}

func TestIssueStreamLink_StatFailureStillSigns(t *testing.T) {
	store := memrepo.New()
	c := seed(t, store, &models.Content{Title: "Free", Type: "video", StorageKey: "uploads/ab/y.mp4"})
	uc := NewIssueStreamLink(store.Contents, &fakeStore{statErr: errors.New("head failed")}, nil)

	link, err := uc.Execute(context.Background(), nil, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.test/get/uploads/ab/y.mp4", link.URL)
	assert.Zero(t, link.Size)
}

func TestIssueStreamLink_ExternalURL(t *testing.T) {
	store := memrepo.New()
	ext := seed(t, store, &models.Content{Title: "YouTube", Type: "video", URL: "https://youtu.be/abc"})
	empty := seed(t, store, &models.Content{Title: "Article", Type: "article"})
	uc := NewIssueStreamLink(store.Contents, nil, nil)

	link, err := uc.Execute(context.Background(), nil, ext.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/abc", link.URL)
	assert.Nil(t, link.ExpiresAt)

	_, err = uc.Execute(context.Background(), nil, empty.ID)
	assert.True(t, httperr.IsBusiness(err, "missing_media_key"))
}
