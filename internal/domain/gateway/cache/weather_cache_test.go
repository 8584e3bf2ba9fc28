package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/redis"
)

const ttl = 1800 * time.Second

var paris = model.WeatherSnapshot{TemperatureC: 15, Description: "nuageux", WindSpeedMps: 5, HumidityPct: 80}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func countingLoader(calls *atomic.Int32, snapshot model.WeatherSnapshot, err error) Loader {
	return func(context.Context) (model.WeatherSnapshot, error) {
		calls.Add(1)
		return snapshot, err
	}
}

type failingStore struct {
	getErr error
	putErr error
	puts   atomic.Int32
}

func (s *failingStore) Get(context.Context, string) (*Entry, error) {
	return nil, s.getErr
}

func (s *failingStore) Put(context.Context, Entry) error {
	s.puts.Add(1)
	return s.putErr
}

func TestKey(t *testing.T) {
	assert.Equal(t, "weather_paris", Key("Paris"))
	assert.Equal(t, "weather_paris", Key("PARIS"))
	assert.Equal(t, "weather_saint-étienne", Key("Saint-Étienne"))
}

func TestEntryValid(t *testing.T) {
	stored := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := &Entry{StoredAt: stored, TTL: ttl}

	assert.True(t, entry.Valid(stored))
	assert.True(t, entry.Valid(stored.Add(ttl-time.Nanosecond)))
	assert.False(t, entry.Valid(stored.Add(ttl)))
	assert.False(t, (*Entry)(nil).Valid(stored))
}

func TestHitWithinTTLSkipsLoader(t *testing.T) {
	clk := &clock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	wc := NewWeatherCache(NewMemoryStore(), Options{Now: clk.Now})
	ctx := context.Background()

	var calls atomic.Int32
	loader := countingLoader(&calls, paris, nil)

	got, err := wc.GetOrLoad(ctx, Key("Paris"), ttl, loader)
	require.NoError(t, err)
	assert.Equal(t, paris, got)

	clk.Advance(ttl - time.Second)
	got, err = wc.GetOrLoad(ctx, Key("paris"), ttl, loader)
	require.NoError(t, err)
	assert.Equal(t, paris, got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExpiredEntryReloads(t *testing.T) {
	clk := &clock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := NewMemoryStore()
	wc := NewWeatherCache(store, Options{Now: clk.Now})
	ctx := context.Background()

	var calls atomic.Int32
	_, err := wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, paris, nil))
	require.NoError(t, err)

	clk.Advance(ttl)
	_, ok := wc.Get(ctx, Key("Paris"))
	assert.False(t, ok)

	fresher := paris
	fresher.TemperatureC = 17
	got, err := wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, fresher, nil))
	require.NoError(t, err)
	assert.Equal(t, fresher, got)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 1, store.Len())

	entry, ok := wc.Get(ctx, Key("Paris"))
	require.True(t, ok)
	assert.Equal(t, clk.Now(), entry.StoredAt)
}

func TestFailureIsNotCached(t *testing.T) {
	store := NewMemoryStore()
	wc := NewWeatherCache(store, Options{})
	ctx := context.Background()
	cause := errors.New("status 500")

	var calls atomic.Int32
	_, err := wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, model.WeatherSnapshot{}, cause))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoadFailed))
	assert.True(t, errors.Is(err, cause))

	entry, storeErr := store.Get(ctx, Key("Paris"))
	require.NoError(t, storeErr)
	assert.Nil(t, entry)

	_, err = wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, paris, nil))
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestStoreErrorsDegradeToMiss(t *testing.T) {
	store := &failingStore{getErr: errors.New("redis down"), putErr: errors.New("redis down")}
	wc := NewWeatherCache(store, Options{})

	var calls atomic.Int32
	for i := 0; i < 2; i++ {
		got, err := wc.GetOrLoad(context.Background(), Key("Lyon"), ttl, countingLoader(&calls, paris, nil))
		require.NoError(t, err)
		assert.Equal(t, paris, got)
	}
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int32(2), store.puts.Load())
}

func TestConcurrentMissesWithoutSingleFlight(t *testing.T) {
	wc := NewWeatherCache(NewMemoryStore(), Options{})

	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (model.WeatherSnapshot, error) {
		calls.Add(1)
		<-release
		return paris, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := wc.GetOrLoad(context.Background(), Key("Paris"), ttl, loader)
			assert.NoError(t, err)
		}()
	}

	require.Eventually(t, func() bool { return calls.Load() == 3 }, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()
}

func TestSingleFlightSharesLoader(t *testing.T) {
	wc := NewWeatherCache(NewMemoryStore(), Options{SingleFlight: true})

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(context.Context) (model.WeatherSnapshot, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return paris, nil
	}

	var wg sync.WaitGroup
	results := make([]model.WeatherSnapshot, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := wc.GetOrLoad(context.Background(), Key("Paris"), ttl, loader)
			assert.NoError(t, err)
			results[i] = got
		}()
	}

	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, paris, got)
	}
	assert.LessOrEqual(t, calls.Load(), int32(5))
	_, ok := wc.Get(context.Background(), Key("Paris"))
	assert.True(t, ok)
}

func TestRefreshOverwritesValidEntry(t *testing.T) {
	wc := NewWeatherCache(NewMemoryStore(), Options{})
	ctx := context.Background()

	var calls atomic.Int32
	_, err := wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, paris, nil))
	require.NoError(t, err)

	fresher := paris
	fresher.Description = "ensoleillé"
	_, err = wc.Refresh(ctx, Key("Paris"), ttl, countingLoader(&calls, fresher, nil))
	require.NoError(t, err)

	entry, ok := wc.Get(ctx, Key("Paris"))
	require.True(t, ok)
	assert.Equal(t, "ensoleillé", entry.Payload.Description)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRedisStore(t *testing.T) {
	server := miniredis.RunT(t)
	client, err := redis.NewClient(redis.NewRedisConfig().WithAddr(server.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := NewRedisStore(client)
	wc := NewWeatherCache(store, Options{})

	var calls atomic.Int32
	_, err = wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, paris, nil))
	require.NoError(t, err)
	assert.True(t, server.Exists("weather::weather_paris"))
	assert.Equal(t, ttl, server.TTL("weather::weather_paris"))

	got, err := wc.GetOrLoad(ctx, Key("Paris"), ttl, countingLoader(&calls, model.WeatherSnapshot{}, nil))
	require.NoError(t, err)
	assert.Equal(t, paris, got)
	assert.Equal(t, int32(1), calls.Load())

	server.FastForward(ttl)
	entry, err := store.Get(ctx, Key("Paris"))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestStoreHealthGateway(t *testing.T) {
	ctx := context.Background()

	memory := NewMemoryStore()
	require.NoError(t, memory.Put(ctx, Entry{Key: Key("Paris"), Payload: paris, StoredAt: time.Now(), TTL: ttl}))
	health := NewMemoryHealthGateway(memory).Health(ctx)
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "1", health.Details["entries"])

	server := miniredis.RunT(t)
	client, err := redis.NewClient(redis.NewRedisConfig().WithAddr(server.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	gateway := NewRedisHealthGateway(client)
	assert.Equal(t, model.StatusUp, gateway.Health(ctx).Status)

	server.Close()
	health = gateway.Health(ctx)
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Equal(t, "redis", health.Details["driver"])

	assert.Equal(t, model.StatusUnknown, (&StoreHealthGateway{}).Health(ctx).Status)
}
