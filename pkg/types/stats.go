// Package types 定义公共类型
//
// 本文件定义事件投递统计快照类型。
package types

// Stats 事件投递统计快照
//
// 所有字段为累计值，由各通道在运行期间递增。
// 快照为某一时刻的点值，在并发修改下是近似的。
type Stats struct {
	// Publishes 发布调用总数
	Publishes int64

	// Deliveries 回调调用总数（含被拦截 panic 的调用）
	Deliveries int64

	// DeliveryPanics 投递期间被拦截的回调 panic 总数
	DeliveryPanics int64

	// Subscribes 订阅总数
	Subscribes int64

	// Unsubscribes 成功取消订阅总数
	Unsubscribes int64
}

// ActiveSubscribers 返回当前活跃订阅者数（订阅数 - 成功取消数）
func (s Stats) ActiveSubscribers() int64 {
	return s.Subscribes - s.Unsubscribes
}
