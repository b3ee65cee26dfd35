package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"antiquify-backend/internal/domains/artifact/model"
)

// fakeRepo is an in-memory ArtifactRepository honoring the same contract
// as the Mongo implementation: conditional like toggling, sentinel errors,
// per-document atomicity (one mutex standing in for the store's guarantee).
type fakeRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]*model.Artifact
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[primitive.ObjectID]*model.Artifact)}
}

func clone(a *model.Artifact) *model.Artifact {
	cp := *a
	cp.LikedBy = append([]string{}, a.LikedBy...)
	return &cp
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.Artifact
	for _, a := range f.docs {
		out = append(out, clone(a))
	}
	return out, nil
}

func (f *fakeRepo) ListTop(ctx context.Context, n int64) ([]*model.Artifact, error) {
	all, _ := f.ListAll(ctx)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Likes > all[j].Likes })
	if int64(len(all)) > n {
		all = all[:n]
	}
	return all, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.docs[id]
	if !ok {
		return nil, model.ErrArtifactNotFound
	}
	return clone(a), nil
}

func (f *fakeRepo) ListByOwner(ctx context.Context, email string) ([]*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.Artifact
	for _, a := range f.docs {
		if a.AddedByEmail == email {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

func (f *fakeRepo) ListLikedBy(ctx context.Context, email string) ([]*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*model.Artifact
	for _, a := range f.docs {
		if a.IsLikedBy(email) {
			out = append(out, clone(a))
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, artifact *model.Artifact) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := primitive.NewObjectID()
	cp := clone(artifact)
	cp.ID = id
	f.docs[id] = cp
	return id, nil
}

func (f *fakeRepo) Update(ctx context.Context, id primitive.ObjectID, fields model.UpdateArtifactRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.docs[id]
	if !ok {
		return model.ErrArtifactNotFound
	}

	a.Name = fields.Name
	a.Image = fields.Image
	a.Type = fields.Type
	a.HistoricalContext = fields.HistoricalContext
	a.CreatedAt = fields.CreatedAt
	a.DiscoveredAt = fields.DiscoveredAt
	a.DiscoveredBy = fields.DiscoveredBy
	a.PresentLocation = fields.PresentLocation
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.docs[id]; !ok {
		return model.ErrArtifactNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeRepo) Like(ctx context.Context, id primitive.ObjectID, email string) (*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.docs[id]
	if !ok {
		return nil, model.ErrArtifactNotFound
	}
	if !a.IsLikedBy(email) {
		a.LikedBy = append(a.LikedBy, email)
		a.Likes++
	}
	return clone(a), nil
}

func (f *fakeRepo) Dislike(ctx context.Context, id primitive.ObjectID, email string) (*model.Artifact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.docs[id]
	if !ok {
		return nil, model.ErrArtifactNotFound
	}
	for i, e := range a.LikedBy {
		if e == email {
			a.LikedBy = append(a.LikedBy[:i], a.LikedBy[i+1:]...)
			a.Likes--
			break
		}
	}
	return clone(a), nil
}

// =====================================================
// TESTS
// =====================================================

func newTestService() (ArtifactService, *fakeRepo) {
	repo := newFakeRepo()
	return NewArtifactService(repo), repo
}

func createArtifact(t *testing.T, svc ArtifactService, name, owner string) string {
	t.Helper()

	res, err := svc.Create(context.Background(), model.CreateArtifactRequest{
		Name:         name,
		AddedByEmail: owner,
	})
	require.NoError(t, err)
	require.Len(t, res.InsertedID, 24)
	return res.InsertedID
}

func TestCreate_ZeroesVotingState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	id := createArtifact(t, svc, "Vase", "a@x.com")

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Vase", got.Name)
	assert.Equal(t, "a@x.com", got.AddedByEmail)
	assert.Equal(t, int64(0), got.Likes)
	assert.Empty(t, got.LikedBy)
}

func TestGetByID_MalformedID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "not-24-hex")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestGetByID_AbsentID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrArtifactNotFound)
}

func TestToggleLike_AddsMemberAndIncrements(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Sword", "a@x.com")

	got, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: "p@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)
	assert.True(t, got.IsLikedBy("p@x.com"))
}

func TestToggleLike_RoundTripRestoresState(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Amphora", "a@x.com")

	before, err := svc.GetByID(ctx, id)
	require.NoError(t, err)

	_, err = svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: "p@x.com"})
	require.NoError(t, err)
	after, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "dislike", Email: "p@x.com"})
	require.NoError(t, err)

	assert.Equal(t, before.Likes, after.Likes)
	assert.Equal(t, before.LikedBy, after.LikedBy)
}

func TestToggleLike_RepeatedLikeIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Coin", "a@x.com")

	req := model.ToggleLikeRequest{Action: "like", Email: "p@x.com"}
	_, err := svc.ToggleLike(ctx, id, req)
	require.NoError(t, err)
	got, err := svc.ToggleLike(ctx, id, req)
	require.NoError(t, err)

	// Counter tracks the set: a second like neither grows likedBy nor
	// inflates likes.
	assert.Equal(t, int64(1), got.Likes)
	assert.Equal(t, []string{"p@x.com"}, got.LikedBy)
}

func TestToggleLike_ConcurrentDistinctUsers(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Tablet", "a@x.com")

	emails := []string{"p@x.com", "q@x.com"}
	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			_, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: email})
			assert.NoError(t, err)
		}(email)
	}
	wg.Wait()

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Likes)
	for _, email := range emails {
		assert.True(t, got.IsLikedBy(email))
	}
}

func TestToggleLike_InvalidAction(t *testing.T) {
	svc, _ := newTestService()
	id := createArtifact(t, svc, "Mask", "a@x.com")

	_, err := svc.ToggleLike(context.Background(), id, model.ToggleLikeRequest{Action: "upvote", Email: "p@x.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidAction)
}

func TestToggleLike_UnknownArtifact(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ToggleLike(context.Background(), primitive.NewObjectID().Hex(),
		model.ToggleLikeRequest{Action: "like", Email: "p@x.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrArtifactNotFound)
}

func TestUpdate_NeverTouchesOwnerOrVotes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Helmet", "a@x.com")

	_, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: "p@x.com"})
	require.NoError(t, err)

	err = svc.Update(ctx, id, model.UpdateArtifactRequest{
		Name:            "Bronze Helmet",
		PresentLocation: "Athens",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bronze Helmet", got.Name)
	assert.Equal(t, "Athens", got.PresentLocation)
	assert.Equal(t, "a@x.com", got.AddedByEmail)
	assert.Equal(t, int64(1), got.Likes)
	assert.Equal(t, []string{"p@x.com"}, got.LikedBy)
}

func TestUpdate_UnknownArtifact(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), model.UpdateArtifactRequest{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrArtifactNotFound)
}

func TestDelete_IsIdempotentInEffect(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Scroll", "a@x.com")

	require.NoError(t, svc.Delete(ctx, id))

	// Second delete reports NotFound, same as the first would for a
	// missing document.
	err := svc.Delete(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrArtifactNotFound)
}

func TestListTop_BoundedAndOrdered(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// 8 artifacts with 0..7 likes each.
	for i := 0; i < 8; i++ {
		id := createArtifact(t, svc, "Item", "a@x.com")
		for j := 0; j < i; j++ {
			email := string(rune('a'+j)) + "@likers.com"
			_, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: email})
			require.NoError(t, err)
		}
	}

	top, err := svc.ListTop(ctx, 0) // 0 falls back to the default of 6
	require.NoError(t, err)
	require.Len(t, top, 6)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Likes, top[i].Likes)
	}
	// Every returned artifact has at least as many likes as the excluded
	// ones (excluded: the two with 0 and 1 likes).
	assert.GreaterOrEqual(t, top[len(top)-1].Likes, int64(2))
}

func TestListByOwner_FiltersExactly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	id := createArtifact(t, svc, "Vase", "a@x.com")

	mine, err := svc.ListByOwner(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, id, mine[0].ID.Hex())

	others, err := svc.ListByOwner(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestListLikedBy_FollowsMembership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	id := createArtifact(t, svc, "Urn", "a@x.com")
	createArtifact(t, svc, "Plate", "a@x.com")

	_, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: "p@x.com"})
	require.NoError(t, err)

	liked, err := svc.ListLikedBy(ctx, "p@x.com")
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, id, liked[0].ID.Hex())
}

func TestGetDetails_DerivedFlag(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	id := createArtifact(t, svc, "Ring", "a@x.com")

	_, err := svc.ToggleLike(ctx, id, model.ToggleLikeRequest{Action: "like", Email: "p@x.com"})
	require.NoError(t, err)

	details, err := svc.GetDetails(ctx, id, "p@x.com")
	require.NoError(t, err)
	assert.True(t, details.IsLikedByUser)

	details, err = svc.GetDetails(ctx, id, "stranger@x.com")
	require.NoError(t, err)
	assert.False(t, details.IsLikedByUser)

	// Absent email is simply "not liked", never an error.
	details, err = svc.GetDetails(ctx, id, "")
	require.NoError(t, err)
	assert.False(t, details.IsLikedByUser)
}
