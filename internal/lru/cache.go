// Package lru は固定容量・追加アロケーションなしの LRU キャッシュを提供します。
//
// 構造は 3 つの部品が同一のスロットアリーナを共有する形です。
//   - スロットアリーナ: capacity 個のスロットを構築時に一括確保
//   - バケットテーブル: capacity * loadFactor 本のチェーン先頭インデックス
//   - 利用順リスト: 全スロットを貫く双方向リスト（head が eviction victim）
//
// 構築後にスロットが確保・解放されることはありません。容量超過時は
// 利用順リスト先頭のスロットを旧バケットチェーンから外し、新しいキーの
// バケットに付け替えてその場で上書きします。
//
// Cache 自体は同期を行いません。複数ゴルーチンで共有する場合は呼び出し側が
// 各呼び出しを直列化してください（internal/store がその役を担います）。
package lru

// Cache は固定容量の LRU キャッシュを表します。
type Cache[K comparable, V any] struct {
	slots   []slot[K, V]
	buckets []int // チェーン先頭のスロットインデックス。none = 空

	usageHead int // LRU（次の victim）
	usageTail int // MRU

	hash func(K) uint64
	size int // 生きている (key, value) の数。capacity を超えない
}

// New は capacity 個のスロットを持つキャッシュを作成します。
// capacity が 0 以下の場合は ErrInvalidCapacity を返します。
// このとき以降、操作中に追加のアロケーションは発生しません。
func New[K comparable, V any](capacity int, opts ...Option[K]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	cfg := Config[K]{LoadFactor: defaultLoadFactor}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.LoadFactor < 1 {
		cfg.LoadFactor = defaultLoadFactor
	}
	if cfg.Hasher == nil {
		cfg.Hasher = defaultHasher[K]()
	}

	c := &Cache[K, V]{
		slots:   make([]slot[K, V], capacity),
		buckets: make([]int, capacity*cfg.LoadFactor),
		hash:    cfg.Hasher,
	}
	for i := range c.buckets {
		c.buckets[i] = none
	}
	// 空スロットはどのバケットにも属さず、利用順リストにはアリーナ順で並ぶ
	for i := range c.slots {
		s := &c.slots[i]
		s.bucket = none
		s.bucketPrev = none
		s.bucketNext = none
		s.usagePrev = i - 1
		s.usageNext = i + 1
	}
	c.slots[capacity-1].usageNext = none
	c.usageHead = 0
	c.usageTail = capacity - 1
	return c, nil
}

// Resolve はキーに対応する値を返します。
// ヒット時はスロットを利用順リストの末尾（MRU）へ昇格させます。
// ミス時は (ゼロ値, false) を返し、副作用はありません。格納されたゼロ値と
// ミスが混同されることはありません（空スロットはどのバケットからも到達不能）。
func (c *Cache[K, V]) Resolve(key K) (V, bool) {
	b := c.bucketFor(key)
	if i := c.chainFind(b, key); i != none {
		c.touch(i)
		return c.slots[i].val, true
	}
	var zero V
	return zero, false
}

// Update はキーに値を対応付けます。
// 既存キーなら値をその場で上書きし MRU へ昇格します。新規キーなら利用順
// リスト先頭の victim を旧チェーンから外して付け替えます。victim が生きた
// エントリだった場合、その旧キーを evictedKey として返します。
func (c *Cache[K, V]) Update(key K, value V) (evictedKey K, evicted, existed bool) {
	b := c.bucketFor(key)
	if i := c.chainFind(b, key); i != none {
		c.slots[i].val = value
		c.touch(i)
		existed = true
		return evictedKey, false, existed
	}

	victim := c.usageHead
	s := &c.slots[victim]
	if s.bucket != none {
		evictedKey = s.key
		evicted = true
		c.chainRemove(victim)
	} else {
		c.size++
	}
	s.key = key
	s.val = value
	c.chainPushFront(b, victim)
	c.touch(victim)
	return evictedKey, evicted, false
}

// Len は生きている (key, value) の数を返します。
// capacity 個の相異なるキーを挿入した後は常に capacity と一致します。
func (c *Cache[K, V]) Len() int { return c.size }

// Cap はキャッシュの容量を返します。構築後に変化しません。
func (c *Cache[K, V]) Cap() int { return len(c.slots) }

func (c *Cache[K, V]) bucketFor(key K) int {
	return int(c.hash(key) % uint64(len(c.buckets)))
}

func (c *Cache[K, V]) chainFind(b int, key K) int {
	for i := c.buckets[b]; i != none; i = c.slots[i].bucketNext {
		if c.slots[i].key == key {
			return i
		}
	}
	return none
}

// chainRemove はスロットを現在のバケットチェーンから外します。
// チェーンは双方向なので、victim がチェーン途中にあっても前後を O(1) で
// つなぎ直せます。先頭だった場合のみバケットテーブルを更新します。
func (c *Cache[K, V]) chainRemove(i int) {
	s := &c.slots[i]
	if s.bucketPrev != none {
		c.slots[s.bucketPrev].bucketNext = s.bucketNext
	} else {
		c.buckets[s.bucket] = s.bucketNext
	}
	if s.bucketNext != none {
		c.slots[s.bucketNext].bucketPrev = s.bucketPrev
	}
	s.bucket = none
	s.bucketPrev = none
	s.bucketNext = none
}

func (c *Cache[K, V]) chainPushFront(b, i int) {
	s := &c.slots[i]
	s.bucket = b
	s.bucketPrev = none
	s.bucketNext = c.buckets[b]
	if s.bucketNext != none {
		c.slots[s.bucketNext].bucketPrev = i
	}
	c.buckets[b] = i
}

// touch はスロットを利用順リストの末尾（MRU）へ移動します。
func (c *Cache[K, V]) touch(i int) {
	if c.usageTail == i {
		return
	}
	s := &c.slots[i]
	if s.usagePrev != none {
		c.slots[s.usagePrev].usageNext = s.usageNext
	} else {
		c.usageHead = s.usageNext
	}
	// i != tail なので usageNext は必ず存在する
	c.slots[s.usageNext].usagePrev = s.usagePrev

	s.usagePrev = c.usageTail
	s.usageNext = none
	c.slots[c.usageTail].usageNext = i
	c.usageTail = i
}
