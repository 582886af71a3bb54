package store

// Set はキーと値をストアにセットします。
// 容量超過時は最も長く使われていないキーが追い出されます。
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	evictedKey, evicted, existed := s.cache.Update(key, value)
	size := s.cache.Len()
	s.mu.Unlock()

	if existed {
		s.cfg.Metrics.IncSetUpdate()
	} else {
		s.cfg.Metrics.IncSetNew()
	}
	s.cfg.Metrics.SetLRUSize(size)

	if s.cfg.Logger != nil {
		if existed {
			s.cfg.Logger.Debug("store.update", "key", key)
		} else {
			s.cfg.Logger.Debug("store.set", "key", key)
		}
	}

	if evicted {
		s.cfg.Metrics.AddEvicted(1)
		if s.cfg.Logger != nil {
			s.cfg.Logger.Info("store.evict", "victim", evictedKey)
		}
	}
}

// Get はキーに対応する値を取得します。
// ヒット時はそのキーが最近使用扱いになります（eviction 対象から遠ざかる）。
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	v, ok := s.cache.Resolve(key)
	s.mu.Unlock()

	if ok {
		s.cfg.Metrics.IncGetHit()
	} else {
		s.cfg.Metrics.IncGetMiss()
	}
	return v, ok
}
