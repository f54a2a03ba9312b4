// Package metric provides Prometheus metrics for Chankey.
//
// It exposes counters for issued tokens and issuance errors plus request
// latency histograms, all registered on a dedicated Prometheus registry so
// tests can use isolated instances.
package metric
