// Package interfaces 定义公共接口
//
// 本文件定义事件通道与事件总线接口，提供事件发布订阅功能。
package interfaces

import "github.com/stelro/thread-safe-pub-sub/pkg/types"

// Channel 定义单一事件形状的发布/订阅通道接口
//
// Channel 维护一份订阅者快照，发布时对快照中的每个订阅者
// 按注册顺序同步调用回调。订阅/取消订阅与发布互不阻塞。
type Channel[T any] interface {
	// Subscribe 注册回调，返回订阅句柄
	Subscribe(fn func(T)) Subscription

	// Unsubscribe 按 ID 移除订阅者，返回是否真正移除
	Unsubscribe(id uint64) bool

	// Publish 向当前快照中的所有订阅者投递事件
	Publish(v T)

	// SubscriberCount 返回当前订阅者数量
	SubscriberCount() int

	// Clear 移除所有订阅者
	Clear()
}

// Bus 定义按主题路由的事件总线接口
//
// 同一 Bus 上的所有主题共享同一个负载类型。
// 主题在首次订阅时惰性创建，之后不再移除。
type Bus[T any] interface {
	// Subscribe 在指定主题上注册回调
	Subscribe(topic string, fn func(T)) Subscription

	// Publish 向指定主题的订阅者投递事件；主题不存在时为静默空操作
	Publish(topic string, v T)

	// SubscriberCount 返回主题的订阅者数量；主题不存在时为 0
	SubscriberCount(topic string) int

	// Topics 返回所有已注册的主题
	Topics() []string
}

// Subscription 定义订阅句柄接口
//
// 句柄代表一次性的取消订阅能力：释放恰好发生一次，
// 重复释放是安全的空操作。句柄不持有通道的强引用。
type Subscription interface {
	// Unsubscribe 释放注册，返回是否真正移除
	Unsubscribe() bool

	// IsActive 返回句柄是否仍未释放
	IsActive() bool
}

// StatsReporter 定义投递指标上报接口
type StatsReporter interface {
	// LogSubscribe 记录一次订阅
	LogSubscribe()

	// LogUnsubscribe 记录一次成功取消订阅
	LogUnsubscribe()

	// LogPublish 记录一次发布及其扇出（本次投递的订阅者数）
	LogPublish(fanout int)

	// LogDeliveryPanic 记录一次被拦截的回调 panic
	LogDeliveryPanic()

	// GetStats 返回统计快照
	GetStats() types.Stats

	// DeliveryRate 返回近期平均投递速率（次/秒）
	DeliveryRate() float64
}

// ChannelOpt 通道选项函数类型
type ChannelOpt func(*ChannelSettings)

// ChannelSettings 通道设置（导出以供实现使用）
type ChannelSettings struct {
	// PanicHandler 接收被拦截的回调 panic 值；为 nil 时记录到日志
	PanicHandler func(recovered any)

	// Stats 投递指标上报器；为 nil 时不统计
	Stats StatsReporter
}

// WithPanicHandler 设置回调 panic 的接收器
//
// 处理器只收到 panic 值本身；无论处理器是否设置，
// 单个订阅者 panic 都不会中断对其余订阅者的投递。
func WithPanicHandler(h func(recovered any)) ChannelOpt {
	return func(s *ChannelSettings) {
		s.PanicHandler = h
	}
}

// WithStats 附加投递指标上报器
func WithStats(r StatsReporter) ChannelOpt {
	return func(s *ChannelSettings) {
		s.Stats = r
	}
}
