package lru

// defaultLoadFactor はバケットテーブル長 / capacity の既定比率です。
const defaultLoadFactor = 4

// Config はキャッシュの設定を表します。
type Config[K comparable] struct {
	LoadFactor int            // 1 以上。0/未指定なら 4
	Hasher     func(K) uint64 // nil なら型スイッチによる既定ハッシュ
}

// Option はキャッシュのオプションを設定する関数です。
type Option[K comparable] func(*Config[K])

// WithLoadFactor はバケットテーブルの倍率を設定するオプションです。
func WithLoadFactor[K comparable](n int) Option[K] {
	return func(c *Config[K]) { c.LoadFactor = n }
}

// WithHasher はキーのハッシュ関数を設定するオプションです。
func WithHasher[K comparable](h func(K) uint64) Option[K] {
	return func(c *Config[K]) { c.Hasher = h }
}
