// Package store は lru.Cache を複数ゴルーチンから安全に使うための
// 直列化レイヤを提供します。コアは同期を行わないため、各呼び出しの間
// ミューテックスを保持して完全に直列化します。ロギングとメトリクスも
// ここで行い、コアは純粋なデータ構造のままにします。
package store

import (
	"sync"

	"github.com/amakane-hakari/kioku/internal/lru"
)

// Store は lru.Cache をロック・ログ・メトリクス付きで包むストアです。
type Store[K comparable, V any] struct {
	cfg Config

	mu    sync.Mutex
	cache *lru.Cache[K, V]
}

// New は容量 capacity のストアを作成します。
// capacity が 0 以下の場合は lru.ErrInvalidCapacity を返します。
func New[K comparable, V any](capacity int, opts ...Option) (*Store[K, V], error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	c, err := lru.New[K, V](capacity, lru.WithLoadFactor[K](cfg.LoadFactor))
	if err != nil {
		return nil, err
	}
	return &Store[K, V]{cfg: cfg, cache: c}, nil
}

// Cap はストアの容量を返します。
func (s *Store[K, V]) Cap() int {
	return s.cache.Cap()
}

// Len はストア内のアイテム数を返します。
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
