// Package metrics 提供事件投递指标
package metrics

import (
	"sync/atomic"

	"github.com/stelro/thread-safe-pub-sub/pkg/types"
)

// ============================================================================
// DeliveryCounter - 投递计数器
// ============================================================================

// DeliveryCounter 投递计数器
//
// DeliveryCounter 跟踪通道的发布与投递活动。
// 使用原子操作实现并发安全的计数器，可被多个通道共享。
type DeliveryCounter struct {
	publishes    atomic.Int64
	deliveries   atomic.Int64
	panics       atomic.Int64
	subscribes   atomic.Int64
	unsubscribes atomic.Int64

	// 投递速率计算器
	deliveryRate *RateMeter
}

// NewDeliveryCounter 创建新的 DeliveryCounter
func NewDeliveryCounter() *DeliveryCounter {
	return &DeliveryCounter{
		deliveryRate: NewRateMeter(),
	}
}

// LogSubscribe 记录一次订阅
func (dc *DeliveryCounter) LogSubscribe() {
	dc.subscribes.Add(1)
}

// LogUnsubscribe 记录一次成功取消订阅
func (dc *DeliveryCounter) LogUnsubscribe() {
	dc.unsubscribes.Add(1)
}

// LogPublish 记录一次发布及其扇出
func (dc *DeliveryCounter) LogPublish(fanout int) {
	dc.publishes.Add(1)
	dc.deliveries.Add(int64(fanout))
	dc.deliveryRate.Add(int64(fanout))
}

// LogDeliveryPanic 记录一次被拦截的回调 panic
func (dc *DeliveryCounter) LogDeliveryPanic() {
	dc.panics.Add(1)
}

// GetStats 返回统计快照
func (dc *DeliveryCounter) GetStats() types.Stats {
	return types.Stats{
		Publishes:      dc.publishes.Load(),
		Deliveries:     dc.deliveries.Load(),
		DeliveryPanics: dc.panics.Load(),
		Subscribes:     dc.subscribes.Load(),
		Unsubscribes:   dc.unsubscribes.Load(),
	}
}

// DeliveryRate 返回近期平均投递速率（次/秒）
func (dc *DeliveryCounter) DeliveryRate() float64 {
	return dc.deliveryRate.Rate()
}

// Reset 将所有计数器清零
func (dc *DeliveryCounter) Reset() {
	dc.publishes.Store(0)
	dc.deliveries.Store(0)
	dc.panics.Store(0)
	dc.subscribes.Store(0)
	dc.unsubscribes.Store(0)
	dc.deliveryRate.Reset()
}
