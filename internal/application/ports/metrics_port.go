package ports

// MetricsRecorder contadores de negocio (lo implementa infrastructure/metrics con Prometheus).
type MetricsRecorder interface {
	ObserveNotification(transport, status string)
	ObserveStockMutation(operation string)
	// ObserveLowStockAlert persisted indica si la alerta llegó a guardarse.
	ObserveLowStockAlert(severity string, persisted bool)
}

// NopMetrics implementación vacía para tests y herramientas de línea de comandos.
type NopMetrics struct{}

func (NopMetrics) ObserveNotification(string, string) {}
func (NopMetrics) ObserveStockMutation(string)        {}
func (NopMetrics) ObserveLowStockAlert(string, bool)  {}
