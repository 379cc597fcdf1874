// Package pubsub 提供线程安全的进程内发布/订阅原语
//
// 核心是一个类型化的事件通道（Channel）及其按主题聚合的
// 事件总线（Bus）：多个生产者可以并发通知多个并发注册的
// 订阅者，除最小同步外互不阻塞。
//
// # 核心概念
//
//   - Channel[T]: 单一负载类型的事件通道，维护写时复制的订阅者快照
//   - Bus[T]: 主题字符串到惰性创建通道的映射
//   - Subscription: 一次性释放的订阅句柄，不持有通道的强引用
//
// # 快速开始
//
//	import pubsub "github.com/stelro/thread-safe-pub-sub"
//
//	ch := pubsub.NewChannel[int]()
//
//	sub := ch.Subscribe(func(v int) {
//	    fmt.Println("收到:", v)
//	})
//	defer sub.Unsubscribe()
//
//	ch.Publish(42)
//
// # 事件总线
//
//	bus := pubsub.NewBus[string]()
//	sub := bus.Subscribe("cpu", func(s string) { /* ... */ })
//	defer sub.Unsubscribe()
//	bus.Publish("cpu", "hello")
//	bus.Publish("unknown", "dropped") // 静默空操作
//
// # 并发模型
//
//	┌──────────────┐   原子读取快照    ┌──────────────────┐
//	│  Publish     │ ───────────────→ │  只读快照 [S...]  │
//	│ （无锁）      │                  └──────────────────┘
//	└──────────────┘                         ↑ 整体替换
//	┌──────────────┐   写时复制更新           │
//	│ Subscribe /  │ ────────────────────────┘
//	│ Unsubscribe  │  （单一写锁下串行）
//	└──────────────┘
//
// 一次发布始终向单一一致的快照投递；并发的订阅变更
// 构建新快照后原子替换，不影响在途发布。
//
// # 错误处理
//
// 核心 API 不返回 error：未知 ID 的取消订阅、向空通道或
// 未知主题发布、重复释放句柄都是幂等的非错误情形，以布尔
// 返回值报告结果。订阅回调的 panic 被逐订阅者拦截，默认
// 记录日志，可通过 WithPanicHandler 自定义接收器。
//
// # 可观测性
//
//	stats := pubsub.NewStatsCounter()
//	ch := pubsub.NewChannel[int](pubsub.WithStats(stats))
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(pubsub.NewStatsCollector(stats))
package pubsub
