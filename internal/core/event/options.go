// Package event 实现写时复制事件通道
package event

import pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// WithPanicHandler 设置回调 panic 的接收器
//
// 这是一个便利函数，与 pkg/interfaces.WithPanicHandler 等效
func WithPanicHandler(h func(recovered any)) pkgif.ChannelOpt {
	return pkgif.WithPanicHandler(h)
}

// WithStats 附加投递指标上报器
//
// 这是一个便利函数，与 pkg/interfaces.WithStats 等效
func WithStats(r pkgif.StatsReporter) pkgif.ChannelOpt {
	return pkgif.WithStats(r)
}
