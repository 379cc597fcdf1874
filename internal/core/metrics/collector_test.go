package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollector_ImplementsInterface 验证 Collector 实现 prometheus.Collector
func TestCollector_ImplementsInterface(t *testing.T) {
	var _ prometheus.Collector = (*Collector)(nil)
}

// TestCollector_MetricCount 测试导出的指标数量
func TestCollector_MetricCount(t *testing.T) {
	c := NewCollector(NewDeliveryCounter())

	assert.Equal(t, 6, testutil.CollectAndCount(c))
}

// TestCollector_Values 测试导出的指标值
func TestCollector_Values(t *testing.T) {
	dc := NewDeliveryCounter()
	dc.LogSubscribe()
	dc.LogSubscribe()
	dc.LogPublish(3)
	dc.LogPublish(3)
	dc.LogDeliveryPanic()

	c := NewCollector(dc)

	expected := `
# HELP pubsub_channel_deliveries_total 回调调用总数
# TYPE pubsub_channel_deliveries_total counter
pubsub_channel_deliveries_total 6
# HELP pubsub_channel_delivery_panics_total 被拦截的回调 panic 总数
# TYPE pubsub_channel_delivery_panics_total counter
pubsub_channel_delivery_panics_total 1
# HELP pubsub_channel_publishes_total 发布调用总数
# TYPE pubsub_channel_publishes_total counter
pubsub_channel_publishes_total 2
# HELP pubsub_channel_subscribes_total 订阅总数
# TYPE pubsub_channel_subscribes_total counter
pubsub_channel_subscribes_total 2
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"pubsub_channel_deliveries_total",
		"pubsub_channel_delivery_panics_total",
		"pubsub_channel_publishes_total",
		"pubsub_channel_subscribes_total",
	)
	require.NoError(t, err)
}

// TestCollector_Register 测试注册到 Registry
func TestCollector_Register(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, reg.Register(NewCollector(NewDeliveryCounter())))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}
