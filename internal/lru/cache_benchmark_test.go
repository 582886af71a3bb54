package lru

import (
	"fmt"
	"math/rand"
	"runtime"
	"testing"
)

type benchConfig struct {
	capacity   int
	loadFactor int
	readRatio  float64
	keySpace   int
}

var benchMatrix = []benchConfig{
	{capacity: 30_000, loadFactor: 4, readRatio: 0.90, keySpace: 50_000},
	{capacity: 30_000, loadFactor: 4, readRatio: 0.50, keySpace: 50_000},
	{capacity: 30_000, loadFactor: 4, readRatio: 0.10, keySpace: 50_000},

	// loadFactor の影響（チェーン長）
	{capacity: 30_000, loadFactor: 1, readRatio: 0.90, keySpace: 50_000},
	{capacity: 30_000, loadFactor: 8, readRatio: 0.90, keySpace: 50_000},

	// 全キーが収まるケース（eviction なし）
	{capacity: 64_000, loadFactor: 4, readRatio: 0.90, keySpace: 50_000},
}

func BenchmarkCache_MixedWorkload(b *testing.B) {
	runtime.GC()

	for _, cfg := range benchMatrix {
		name := fmt.Sprintf("capacity=%d, loadFactor=%d, readRatio=%.0f, keySpace=%d",
			cfg.capacity, cfg.loadFactor, cfg.readRatio*100, cfg.keySpace,
		)
		b.Run(name, func(b *testing.B) {
			runOneBenchmark(b, cfg)
		})
	}
}

func runOneBenchmark(b *testing.B, cfg benchConfig) {
	b.ReportAllocs()

	// 乱数(固定シードで再現性確保)
	rnd := rand.New(rand.NewSource(42))

	c, err := New[string, string](cfg.capacity, WithLoadFactor[string](cfg.loadFactor))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	// キーは事前生成（計測対象はキャッシュ操作のみ）
	keys := make([]string, cfg.keySpace)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%06d", i)
	}
	for i := 0; i < cfg.capacity; i++ {
		c.Update(keys[i%cfg.keySpace], "warm")
	}

	var hits, evictions int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[rnd.Intn(cfg.keySpace)]
		if rnd.Float64() < cfg.readRatio {
			if _, ok := c.Resolve(k); ok {
				hits++
			}
		} else {
			if _, evicted, _ := c.Update(k, "v"); evicted {
				evictions++
			}
		}
	}
	b.StopTimer()

	b.ReportMetric(float64(hits), "hits_total")
	b.ReportMetric(float64(evictions), "evictions_total")
}

func BenchmarkCache_ResolveHit(b *testing.B) {
	b.ReportAllocs()

	const capacity = 10_000
	c, _ := New[string, string](capacity)
	keys := make([]string, capacity)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%05d", i)
		c.Update(keys[i], "v")
	}

	rnd := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := c.Resolve(keys[rnd.Intn(capacity)]); !ok {
			b.Fatalf("unexpected miss")
		}
	}
}
