package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCommand("pay_access_fee", "ok", time.Millisecond)
	m.ObserveCommand("pay_access_fee", "ok", time.Millisecond)
	m.ObserveCommand("pay_access_fee", "already_paid", time.Millisecond)
	m.Retry("pay_access_fee")
	m.SideEffectFailed("notify")
	m.AccessFeeCharged(10)
	m.AccessFeeCharged(5)
	m.NotificationDelivered("access_paid", true)
	m.NotificationDelivered("access_paid", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("pay_access_fee", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("pay_access_fee", "already_paid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RetriesTotal.WithLabelValues("pay_access_fee")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SideEffectFailures.WithLabelValues("notify")))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.AccessFeeCoins))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("access_paid", "failed")))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
