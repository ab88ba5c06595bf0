package bucketfeed

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bucketfeed/internal/seed"
	"github.com/arloliu/bucketfeed/sched"
	bftest "github.com/arloliu/bucketfeed/testing"
	"github.com/arloliu/bucketfeed/types"
)

// mockSource supplies synthetic raw resolutions for tests.
type mockSource struct {
	res []types.Size
}

var _ types.ItemSource = (*mockSource)(nil)

func (m *mockSource) Len() int { return len(m.res) }

func (m *mockSource) Resolution(i int) types.Size { return m.res[i] }

// mixedSource builds n items cycling through landscape, square and portrait
// shapes.
func mixedSource(n int) *mockSource {
	shapes := []types.Size{
		{Width: 400, Height: 1600},
		{Width: 900, Height: 1100},
		{Width: 640, Height: 640},
		{Width: 1200, Height: 800},
		{Width: 1900, Height: 600},
	}
	res := make([]types.Size, n)
	for i := range res {
		res[i] = shapes[i%len(shapes)]
	}

	return &mockSource{res: res}
}

func testCfg(batchSize int) *Config {
	cfg := TestConfig()
	cfg.BatchSize = batchSize

	return &cfg
}

func TestNew_Validation(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil, mixedSource(4))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := New(testCfg(4), nil)
		require.ErrorIs(t, err, ErrItemSourceRequired)
	})

	t.Run("missing batch size", func(t *testing.T) {
		cfg := DefaultConfig()
		_, err := New(&cfg, mixedSource(4))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("target area not divisible by step squared", func(t *testing.T) {
		cfg := testCfg(4)
		cfg.TargetArea = 1000 * 1000
		_, err := New(cfg, mixedSource(4))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bounds admit no bucket", func(t *testing.T) {
		cfg := testCfg(4)
		cfg.TargetArea = 64 * 64
		cfg.MinSize = 1024
		cfg.MaxSize = 2048
		_, err := New(cfg, mixedSource(4))
		require.ErrorIs(t, err, ErrEmptyBucketTable)
	})
}

func TestDataset_Len(t *testing.T) {
	ds, err := New(testCfg(4), mixedSource(10))
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	// Length depends only on item count and batch size; reassignment must
	// not change it.
	require.NoError(t, ds.InitWorker(0))
	require.Equal(t, 3, ds.Len())
	require.NoError(t, ds.InitWorker(1))
	require.Equal(t, 3, ds.Len())
}

func TestDataset_ServeBeforeInit(t *testing.T) {
	ds, err := New(testCfg(4), mixedSource(10))
	require.NoError(t, err)

	_, err = ds.Batch(0)
	require.ErrorIs(t, err, ErrNotAssigned)
	_, err = ds.RatioFor(0)
	require.ErrorIs(t, err, ErrNotAssigned)
}

func TestDataset_BatchProperties(t *testing.T) {
	ds, err := New(testCfg(4), mixedSource(37), WithLogger(bftest.NewTestLogger(t)))
	require.NoError(t, err)
	require.NoError(t, ds.InitWorker(5))

	seen := make(map[int]int)
	for i := 0; i < ds.BatchCount(); i++ {
		batch, err := ds.Batch(i)
		require.NoError(t, err)
		require.NotEmpty(t, batch)
		require.LessOrEqual(t, len(batch), 4)

		// Homogeneity: every member resolves to the same assigned ratio.
		first, err := ds.RatioFor(batch[0])
		require.NoError(t, err)
		for _, item := range batch {
			ratio, err := ds.RatioFor(item)
			require.NoError(t, err)
			require.Equal(t, first, ratio, "batch %d mixes ratios", i)
			seen[item]++
		}
	}

	require.Len(t, seen, 37)
	for item, count := range seen {
		require.Equal(t, 1, count, "item %d served %d times", item, count)
	}

	_, err = ds.Batch(ds.BatchCount())
	require.ErrorIs(t, err, ErrBatchIndex)
	_, err = ds.RatioFor(37)
	require.ErrorIs(t, err, ErrItemIndex)
}

func TestDataset_DeterministicPerSeed(t *testing.T) {
	a, err := New(testCfg(4), mixedSource(41))
	require.NoError(t, err)
	b, err := New(testCfg(4), mixedSource(41))
	require.NoError(t, err)

	require.NoError(t, a.InitWorker(3))
	require.NoError(t, b.InitWorker(3))

	require.Equal(t, a.BatchCount(), b.BatchCount())
	for i := 0; i < a.BatchCount(); i++ {
		ba, err := a.Batch(i)
		require.NoError(t, err)
		bb, err := b.Batch(i)
		require.NoError(t, err)
		require.Equal(t, ba, bb, "batch %d differs between identical passes", i)
	}
	for item := 0; item < 41; item++ {
		ra, err := a.RatioFor(item)
		require.NoError(t, err)
		rb, err := b.RatioFor(item)
		require.NoError(t, err)
		require.Equal(t, ra, rb)
	}
}

func TestDataset_DistinctWorkersDistinctStreams(t *testing.T) {
	a, err := New(testCfg(4), mixedSource(64))
	require.NoError(t, err)
	b, err := New(testCfg(4), mixedSource(64))
	require.NoError(t, err)

	require.NoError(t, a.InitWorker(1))
	require.NoError(t, b.InitWorker(2))

	// With 16+ batches, two workers agreeing on the whole order would mean
	// the seeds collided.
	require.NotEqual(t, a.batches, b.batches)
}

func TestDataset_LeadBatchFirst(t *testing.T) {
	ds, err := New(testCfg(4), mixedSource(53))
	require.NoError(t, err)
	require.NoError(t, ds.InitWorker(0))

	// The lead batch comes from the lowest-ratio populated bucket, so its
	// assigned ratio is the minimum over all items.
	minRatio := 1e9
	for item := 0; item < 53; item++ {
		ratio, err := ds.RatioFor(item)
		require.NoError(t, err)
		if ratio < minRatio {
			minRatio = ratio
		}
	}

	lead, err := ds.Batch(0)
	require.NoError(t, err)
	leadRatio, err := ds.RatioFor(lead[0])
	require.NoError(t, err)
	require.Equal(t, minRatio, leadRatio)
}

func TestDataset_LeadPromotionIsOneShot(t *testing.T) {
	cfg := testCfg(4)
	ds, err := New(cfg, mixedSource(53))
	require.NoError(t, err)

	require.NoError(t, ds.InitWorker(9))
	require.NoError(t, ds.InitWorker(9))

	// The second pass must be a pure assign+build with the derived seed:
	// no lead promotion applied.
	rng := rand.New(rand.NewPCG(seed.Derive(cfg.Seed, 9), 0))
	asg, err := sched.AssignBuckets(ds.resolutions, ds.table, cfg.BatchSize)
	require.NoError(t, err)
	expected := sched.BuildBatches(asg.Content, cfg.BatchSize, rng)
	require.Equal(t, expected, ds.batches)
}

func TestDataset_Hooks(t *testing.T) {
	var assigned, promoted int
	var lastBatches int
	hooks := &Hooks{
		OnAssigned: func(_ uint64, batches int) {
			assigned++
			lastBatches = batches
		},
		OnLeadPromoted: func(_ int) {
			promoted++
		},
	}

	ds, err := New(testCfg(4), mixedSource(21), WithHooks(hooks))
	require.NoError(t, err)

	require.NoError(t, ds.InitWorker(0))
	require.Equal(t, 1, assigned)
	require.Equal(t, 1, promoted)
	require.Equal(t, ds.BatchCount(), lastBatches)

	require.NoError(t, ds.InitWorker(0))
	require.Equal(t, 2, assigned)
	require.Equal(t, 1, promoted, "lead promotion must run once per worker lifetime")
}

func TestDataset_TableExposed(t *testing.T) {
	ds, err := New(testCfg(2), mixedSource(8))
	require.NoError(t, err)
	require.NoError(t, ds.InitWorker(0))

	table := ds.Table()
	require.Positive(t, table.Len())

	// Every assigned ratio comes from the table.
	ratios := make(map[float64]bool, table.Len())
	for i := 0; i < table.Len(); i++ {
		ratios[table.Ratio(i)] = true
	}
	for item := 0; item < 8; item++ {
		ratio, err := ds.RatioFor(item)
		require.NoError(t, err)
		require.True(t, ratios[ratio], "item %d ratio %v not in table", item, ratio)
	}
}
