package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records cart, checkout, and session activity.
type StorefrontMetrics struct {
	cartMutations   *prometheus.CounterVec
	ordersSubmitted prometheus.Counter
	checkoutDenied  prometheus.Counter
	activeSessions  prometheus.Gauge
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	ordersSubmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Successfully submitted orders.",
	})
	checkoutDenied := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_denied_total",
		Help: "Checkout submissions rejected by field validation.",
	})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_sessions",
		Help: "Sessions currently tracked by the registry.",
	})
	reg.MustRegister(cartMutations, ordersSubmitted, checkoutDenied, activeSessions)
	return &StorefrontMetrics{
		cartMutations:   cartMutations,
		ordersSubmitted: ordersSubmitted,
		checkoutDenied:  checkoutDenied,
		activeSessions:  activeSessions,
	}
}

// IncCartMutation increments the counter for the named cart operation.
func (m *StorefrontMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncOrderSubmitted records one successful order submission.
func (m *StorefrontMetrics) IncOrderSubmitted() {
	if m == nil || m.ordersSubmitted == nil {
		return
	}
	m.ordersSubmitted.Inc()
}

// IncCheckoutDenied records one submission rejected by validation.
func (m *StorefrontMetrics) IncCheckoutDenied() {
	if m == nil || m.checkoutDenied == nil {
		return
	}
	m.checkoutDenied.Inc()
}

// SetActiveSessions updates the live session gauge.
func (m *StorefrontMetrics) SetActiveSessions(n int) {
	if m == nil || m.activeSessions == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
