// Package metrics 提供事件投递指标
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/stelro/thread-safe-pub-sub/pkg/interfaces"
)

// ============================================================================
// Prometheus Collector
// ============================================================================

// 指标帮助文本（与 collector_test.go 中的期望输出保持一致）
const (
	helpPublishes      = "发布调用总数"
	helpDeliveries     = "回调调用总数"
	helpDeliveryPanics = "被拦截的回调 panic 总数"
	helpSubscribes     = "订阅总数"
	helpUnsubscribes   = "成功取消订阅总数"
	helpDeliveryRate   = "近 60 秒平均投递速率（次/秒）"
)

// Collector 将投递统计以 Prometheus 指标形式导出
//
// Collector 只依赖 StatsReporter 接口，采集时读取点值快照，
// 因此可以包装任意上报器实现。
type Collector struct {
	stats pkgif.StatsReporter

	publishes      *prometheus.Desc
	deliveries     *prometheus.Desc
	deliveryPanics *prometheus.Desc
	subscribes     *prometheus.Desc
	unsubscribes   *prometheus.Desc
	deliveryRate   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector 创建包装指定上报器的采集器
func NewCollector(stats pkgif.StatsReporter) *Collector {
	return &Collector{
		stats: stats,
		publishes: prometheus.NewDesc(
			"pubsub_channel_publishes_total", helpPublishes, nil, nil),
		deliveries: prometheus.NewDesc(
			"pubsub_channel_deliveries_total", helpDeliveries, nil, nil),
		deliveryPanics: prometheus.NewDesc(
			"pubsub_channel_delivery_panics_total", helpDeliveryPanics, nil, nil),
		subscribes: prometheus.NewDesc(
			"pubsub_channel_subscribes_total", helpSubscribes, nil, nil),
		unsubscribes: prometheus.NewDesc(
			"pubsub_channel_unsubscribes_total", helpUnsubscribes, nil, nil),
		deliveryRate: prometheus.NewDesc(
			"pubsub_channel_delivery_rate", helpDeliveryRate, nil, nil),
	}
}

// Describe 实现 prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.publishes
	ch <- c.deliveries
	ch <- c.deliveryPanics
	ch <- c.subscribes
	ch <- c.unsubscribes
	ch <- c.deliveryRate
}

// Collect 实现 prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats.GetStats()

	ch <- prometheus.MustNewConstMetric(
		c.publishes, prometheus.CounterValue, float64(s.Publishes))
	ch <- prometheus.MustNewConstMetric(
		c.deliveries, prometheus.CounterValue, float64(s.Deliveries))
	ch <- prometheus.MustNewConstMetric(
		c.deliveryPanics, prometheus.CounterValue, float64(s.DeliveryPanics))
	ch <- prometheus.MustNewConstMetric(
		c.subscribes, prometheus.CounterValue, float64(s.Subscribes))
	ch <- prometheus.MustNewConstMetric(
		c.unsubscribes, prometheus.CounterValue, float64(s.Unsubscribes))
	ch <- prometheus.MustNewConstMetric(
		c.deliveryRate, prometheus.GaugeValue, c.stats.DeliveryRate())
}
