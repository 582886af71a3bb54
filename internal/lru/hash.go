package lru

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// defaultHasher は K の実際の型に応じた既定ハッシュ関数を返します。
// 文字列キーは murmur3、整数キーはそのままビットを使い、
// それ以外は fmt 経由で murmur3 にフォールバックします。
func defaultHasher[K comparable]() func(K) uint64 {
	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return murmur3.Sum64([]byte(k))
		case int:
			return uint64(k)
		case int32:
			return uint64(uint32(k))
		case int64:
			return uint64(k)
		case uint:
			return uint64(k)
		case uint32:
			return uint64(k)
		case uint64:
			return k
		default:
			return murmur3.Sum64(fmt.Appendf(nil, "%v", k))
		}
	}
}
