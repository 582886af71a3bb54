package store

import (
	"github.com/amakane-hakari/kioku/internal/metrics"
)

type logLike interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config はストアの設定を表します。
type Config struct {
	LoadFactor int // バケットテーブル倍率。0/未指定ならコアの既定値
	Logger     logLike
	Metrics    metrics.Interface
}

func defaultConfig() Config {
	return Config{Metrics: metrics.Noop{}}
}

// Option はストアのオプションを設定する関数です。
type Option func(*Config)

// WithLogger はストアのロガーを設定するオプションです。
func WithLogger(l logLike) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetrics はストアのメトリクスを設定するオプションです。
func WithMetrics(m metrics.Interface) Option {
	return func(c *Config) { c.Metrics = m }
}

// WithLoadFactor はバケットテーブルの倍率を設定するオプションです。
func WithLoadFactor(n int) Option {
	return func(c *Config) { c.LoadFactor = n }
}
