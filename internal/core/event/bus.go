// Package event 实现写时复制事件通道
package event

import (
	"sync"

	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
)

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 按主题路由的事件总线
//
// 每个主题对应一个惰性创建的通道，所有主题共享同一负载类型。
// 注册锁只保护主题映射本身，投递在锁外进行。
type Bus[T any] struct {
	// mu 注册锁，保护 channels 映射
	mu sync.Mutex

	// channels 主题到通道的映射；主题创建后不再移除
	channels map[string]*Channel[T]

	// opts 应用到每个惰性创建通道的选项
	opts []pkgif.ChannelOpt
}

// NewBus 创建新的事件总线
//
// 传入的选项会应用到之后惰性创建的每个主题通道。
func NewBus[T any](opts ...pkgif.ChannelOpt) *Bus[T] {
	return &Bus[T]{
		channels: make(map[string]*Channel[T]),
		opts:     opts,
	}
}

// ============================================================================
// Bus 接口实现
// ============================================================================

// Subscribe 在指定主题上注册回调
//
// 主题的通道在首次订阅时创建，之后被所有操作复用。
// 注册锁只在获取/创建通道引用期间持有。
func (b *Bus[T]) Subscribe(topic string, fn func(T)) pkgif.Subscription {
	b.mu.Lock()
	ch, ok := b.channels[topic]
	if !ok {
		ch = NewChannel[T](b.opts...)
		b.channels[topic] = ch
	}
	b.mu.Unlock()

	return ch.Subscribe(fn)
}

// Publish 向指定主题的订阅者投递事件
//
// 从未被订阅过的主题是静默空操作，不是错误。
func (b *Bus[T]) Publish(topic string, v T) {
	b.mu.Lock()
	ch := b.channels[topic]
	b.mu.Unlock()

	if ch == nil {
		return
	}
	ch.Publish(v)
}

// SubscriberCount 返回主题的订阅者数量；主题不存在时为 0
func (b *Bus[T]) SubscriberCount(topic string) int {
	b.mu.Lock()
	ch := b.channels[topic]
	b.mu.Unlock()

	if ch == nil {
		return 0
	}
	return ch.SubscriberCount()
}

// Topics 返回所有已注册的主题
func (b *Bus[T]) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	topics := make([]string, 0, len(b.channels))
	for topic := range b.channels {
		topics = append(topics, topic)
	}
	return topics
}
