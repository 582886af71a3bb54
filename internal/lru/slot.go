package lru

// none はリンクが存在しないことを表すインデックス値です。
const none = -1

// slot はアリーナの 1 要素を表します。
// 構築後に確保・解放されることはなく、eviction 時にその場で上書きされます。
// リンクはすべてアリーナ内インデックス（none = リンクなし）。
type slot[K comparable, V any] struct {
	key K
	val V

	// 現在属するバケット。空スロットは none（どのチェーンからも到達不能）
	bucket int

	// バケットチェーン（双方向: 任意位置の O(1) 除去のため）
	bucketPrev int
	bucketNext int

	// 利用順リスト（head = LRU victim, tail = MRU）
	usagePrev int
	usageNext int
}
