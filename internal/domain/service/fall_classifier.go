package service

// FallClassifier decides whether a telemetry message represents a genuine
// fall. The interface exists so the keyword rule can be swapped for a richer
// model without touching the ingestion or dispatch contracts.
type FallClassifier interface {
	// Classify reports whether the message describes a fall. The decision
	// is independent per message: no debouncing, no temporal correlation.
	Classify(mensaje string) bool
}
