// Package metrics exposes Prometheus counters and histograms for form
// submissions and serves them over HTTP.
//
// Use New in the server binary and NewWithRegistry in tests so each test gets
// its own registry.
package metrics
