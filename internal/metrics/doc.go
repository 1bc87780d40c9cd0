// Package metrics exposes Prometheus instrumentation for calculations and
// runtime memory readings used in detailed reports.
package metrics
