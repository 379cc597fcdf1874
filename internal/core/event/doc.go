// Package event 实现进程内同步发布/订阅通道
//
// 提供写时复制快照的事件通道与按主题路由的事件总线，支持：
//   - 多订阅者，按注册顺序同步投递
//   - 发布与订阅变更互不阻塞
//   - 一次性释放的订阅句柄（弱引用所属通道）
//   - 单订阅者 panic 隔离
//   - 可选的投递指标上报
//
// # 快速开始
//
//	// 创建通道
//	ch := event.NewChannel[int]()
//
//	// 订阅事件
//	sub := ch.Subscribe(func(v int) {
//	    // 处理事件
//	})
//	defer sub.Unsubscribe()
//
//	// 发布事件（同步调用所有订阅者）
//	ch.Publish(42)
//
// # 事件总线
//
//	bus := event.NewBus[string]()
//	sub := bus.Subscribe("cpu", func(s string) { /* ... */ })
//	defer sub.Unsubscribe()
//	bus.Publish("cpu", "hello")
//
// # Fx 模块
//
//	import "go.uber.org/fx"
//
//	app := fx.New(
//	    event.Module[MyEvent](),
//	    fx.Invoke(func(bus pkgif.Bus[MyEvent]) {
//	        sub := bus.Subscribe("topic", handler)
//	        // ...
//	    }),
//	)
//
// # 并发安全
//
// 通道只有一把写锁，保护 Subscribe/Unsubscribe/Clear 的写时复制更新；
// Publish 和 SubscriberCount 只原子读取当前快照指针，不加锁。
// 一次发布始终看到单一一致的快照，即使订阅在并发变更。
// 快照发布后只读，只会被整体替换，这是读侧无锁的前提。
//
// 订阅句柄的释放由原子 ID 交换保证恰好一次；
// 被丢弃的句柄由 runtime.AddCleanup 在 GC 时兜底释放。
//
// # 相关文档
//
//   - 接口定义：pkg/interfaces/event.go
//   - 指标实现：internal/core/metrics
package event
