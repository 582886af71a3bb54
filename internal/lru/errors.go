package lru

import "errors"

// ErrInvalidCapacity は capacity が 0 以下で構築しようとした場合のエラーです。
var ErrInvalidCapacity = errors.New("lru: capacity must be greater than zero")
