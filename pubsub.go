package pubsub

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/stelro/thread-safe-pub-sub/internal/core/event"
	"github.com/stelro/thread-safe-pub-sub/internal/core/metrics"
	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v1.0.0"

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// Subscription 订阅句柄
//
// 释放恰好发生一次：显式调用 Unsubscribe，或句柄被丢弃后
// 由运行时清理兜底。推荐写法：
//
//	sub := ch.Subscribe(fn)
//	defer sub.Unsubscribe()
type Subscription = pkgif.Subscription

// Channel 事件通道接口
type Channel[T any] = pkgif.Channel[T]

// Bus 事件总线接口
type Bus[T any] = pkgif.Bus[T]

// StatsReporter 投递指标上报接口
type StatsReporter = pkgif.StatsReporter

// ════════════════════════════════════════════════════════════════════════════
//                              构造函数
// ════════════════════════════════════════════════════════════════════════════

// NewChannel 创建负载类型为 T 的事件通道
func NewChannel[T any](opts ...Option) Channel[T] {
	return event.NewChannel[T](opts...)
}

// NewBus 创建负载类型为 T 的事件总线
//
// 选项应用到每个惰性创建的主题通道。
func NewBus[T any](opts ...Option) Bus[T] {
	return event.NewBus[T](opts...)
}

// NewStatsCounter 创建投递指标计数器
func NewStatsCounter() StatsReporter {
	return metrics.NewDeliveryCounter()
}

// NewStatsCollector 创建包装指定上报器的 Prometheus 采集器
func NewStatsCollector(stats StatsReporter) prometheus.Collector {
	return metrics.NewCollector(stats)
}

// Module 返回负载类型为 T 的 Fx 模块，向容器提供 Bus[T]
func Module[T any]() fx.Option {
	return event.Module[T]()
}
