package pubsub

import pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"

// Option 通道/总线配置选项函数
type Option = pkgif.ChannelOpt

// WithPanicHandler 设置订阅回调 panic 的接收器
//
// 无论接收器是否设置，单个订阅者 panic 都不会中断
// 对其余订阅者的投递。
func WithPanicHandler(h func(recovered any)) Option {
	return pkgif.WithPanicHandler(h)
}

// WithStats 附加投递指标上报器
func WithStats(r StatsReporter) Option {
	return pkgif.WithStats(r)
}
