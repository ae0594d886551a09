package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/pkg/api"
)

func cachedFirstName(t *testing.T, store storage.SessionStore) string {
	t.Helper()
	cached, err := store.GetProfile(context.Background())
	require.NoError(t, err)

	var p api.UserProfile
	require.NoError(t, json.Unmarshal(cached.Profile, &p))
	return p.FirstName
}

// TestClient_GetUserProfile_CacheFirst проверяет, что при наличии кэша
// сетевых вызовов нет
func TestClient_GetUserProfile_CacheFirst(t *testing.T) {
	counter := countCalls(func(w http.ResponseWriter, r *http.Request) {
		t.Error("network must not be used when the profile is cached")
	})
	client, store := newTestClient(t, counter)

	seedProfile(t, store, api.UserProfile{ID: "u", FirstName: "Cached"}, time.Now())

	for range 3 {
		resp, err := client.GetUserProfile(context.Background())
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Cached", resp.Data.FirstName)
	}

	assert.Zero(t, counter.Calls())
}

func TestClient_GetUserProfile_MissFetchesAndCaches(t *testing.T) {
	clock := newManualClock()
	counter := countCalls(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/me/profile", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: "Priya", City: "Pune"}))
	})
	client, store := newTestClient(t, counter, WithClock(clock.Now))

	resp, err := client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Priya", resp.Data.FirstName)

	cached, err := store.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), cached.CachedAt)
	assert.Equal(t, "Priya", cachedFirstName(t, store))

	// Повторный вызов отдается из кэша
	_, err = client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, counter.Calls())
}

func TestClient_GetUserProfile_FailureNotCached(t *testing.T) {
	tests := []struct {
		handler http.HandlerFunc
		name    string
		wantErr bool
	}{
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: false, Message: "Profile not found"})
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, store := newTestClient(t, tt.handler)

			resp, err := client.GetUserProfile(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.False(t, resp.Success)
			}

			_, err = store.GetProfile(context.Background())
			assert.ErrorIs(t, err, storage.ErrProfileNotFound)
		})
	}
}

func TestClient_GetUserProfile_TTL(t *testing.T) {
	clock := newManualClock()
	var version atomic.Int32
	counter := countCalls(func(w http.ResponseWriter, r *http.Request) {
		n := version.Add(1)
		name := "v1"
		if n > 1 {
			name = "v2"
		}
		writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: name}))
	})
	client, _ := newTestClient(t, counter, WithClock(clock.Now), WithCachePolicy(CacheTTL(time.Minute)))

	resp, err := client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", resp.Data.FirstName)

	clock.Advance(30 * time.Second)
	resp, err = client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1", resp.Data.FirstName)
	assert.Equal(t, 1, counter.Calls())

	clock.Advance(31 * time.Second)
	resp, err = client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2", resp.Data.FirstName)
	assert.Equal(t, 2, counter.Calls())
}

func TestClient_GetUserProfile_CorruptCacheRefetches(t *testing.T) {
	counter := countCalls(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: "Fresh"}))
	})
	client, store := newTestClient(t, counter)

	require.NoError(t, store.SaveProfile(context.Background(), &storage.CachedProfile{
		Profile:  json.RawMessage(`{not json`),
		CachedAt: time.Now(),
	}))

	resp, err := client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Fresh", resp.Data.FirstName)
	assert.Equal(t, 1, counter.Calls())
	assert.Equal(t, "Fresh", cachedFirstName(t, store))
}

func TestClient_GetUserProfile_CacheWriteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: "Priya"}))
	}))
	t.Cleanup(srv.Close)

	store := &storage.SessionStoreMock{
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			return &storage.Session{AccessToken: "a", UserID: "u"}, nil
		},
		GetProfileFunc: func(ctx context.Context) (*storage.CachedProfile, error) {
			return nil, storage.ErrProfileNotFound
		},
		SaveProfileFunc: func(ctx context.Context, profile *storage.CachedProfile) error {
			return errors.New("read-only filesystem")
		},
	}
	client := NewClient(srv.URL, store, WithLogger(discardLogger()))

	resp, err := client.GetUserProfile(context.Background())
	require.NoError(t, err, "cache write failure must not fail the call")
	assert.Equal(t, "Priya", resp.Data.FirstName)
	assert.Len(t, store.SaveProfileCalls(), 1)
}

// TestClient_UpdateUserProfile_ServerRepresentation проверяет, что после
// обновления кэш содержит ответ сервера, а не отправленные поля
func TestClient_UpdateUserProfile_ServerRepresentation(t *testing.T) {
	var gets atomic.Int32
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var update api.ProfileUpdate
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&update))
			if assert.NotNil(t, update.City) {
				assert.Equal(t, "  mumbai ", *update.City)
			}
			assert.Nil(t, update.FirstName, "unset fields are not sent")

			// Сервер нормализует значение и дополняет профиль
			writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{
				ID:        "u",
				FirstName: "Priya",
				City:      "Mumbai",
				UpdatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			}))
		default:
			gets.Add(1)
			writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: "Stale"}))
		}
	}))

	seedProfile(t, store, api.UserProfile{ID: "u", FirstName: "Priya", City: "Pune"}, time.Now())

	city := "  mumbai "
	resp, err := client.UpdateUserProfile(context.Background(), api.ProfileUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", resp.Data.City)

	got, err := client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, *resp.Data, *got.Data)
	assert.Zero(t, gets.Load())
}

func TestClient_UpdateUserProfile_FailureKeepsCache(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, api.Response[api.Empty]{Success: false, Message: "Invalid city"})
	}))

	seedProfile(t, store, api.UserProfile{ID: "u", FirstName: "Original"}, time.Now())

	name := "Changed"
	resp, err := client.UpdateUserProfile(context.Background(), api.ProfileUpdate{FirstName: &name})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Original", cachedFirstName(t, store))
}

// TestClient_GetUserProfile_ConcurrentLastWriteWins: две одновременные
// загрузки не объединяются, в кэше остается ответ, записанный последним
func TestClient_GetUserProfile_ConcurrentLastWriteWins(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var arrivals atomic.Int32

	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if arrivals.Add(1) == 1 {
			close(firstArrived)
			<-releaseFirst
			writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: "first"}))
			return
		}
		writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "u", FirstName: "second"}))
	}))

	var wg sync.WaitGroup
	var first *api.Response[api.UserProfile]
	var firstErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		first, firstErr = client.GetUserProfile(context.Background())
	}()

	<-firstArrived

	second, err := client.GetUserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", second.Data.FirstName)
	assert.Equal(t, "second", cachedFirstName(t, store))

	close(releaseFirst)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.Equal(t, "first", first.Data.FirstName)
	assert.Equal(t, "first", cachedFirstName(t, store), "the later write wins")
	assert.EqualValues(t, 2, arrivals.Load())
}

func TestClient_GetProfileByID(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/profile/user-42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, api.OK(&api.UserProfile{ID: "user-42", FirstName: "Arjun"}))
	}))

	resp, err := client.GetProfileByID(context.Background(), "user-42")
	require.NoError(t, err)
	assert.Equal(t, "Arjun", resp.Data.FirstName)

	// Чужие анкеты не попадают в кэш собственного профиля
	_, err = store.GetProfile(context.Background())
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)

	_, err = client.GetProfileByID(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyID)
}
