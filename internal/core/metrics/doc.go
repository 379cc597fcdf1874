// Package metrics 提供事件投递指标
//
// 以原子计数器跟踪发布、投递、订阅变更和被拦截的回调 panic，
// 并通过滑动窗口速率计算器给出近期投递速率。
// Collector 将计数器集合以 Prometheus 指标形式导出。
//
// # 快速开始
//
//	counter := metrics.NewDeliveryCounter()
//	ch := event.NewChannel[int](event.WithStats(counter))
//
//	// ...运行一段时间后...
//	stats := counter.GetStats()
//	rate := counter.DeliveryRate()
//
// # Prometheus 导出
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(metrics.NewCollector(counter))
//
// # 并发安全
//
// 所有计数器使用 atomic 递增；速率计算器内部使用读写锁。
// GetStats 返回的是点值快照，在并发修改下是近似的。
package metrics
