/*
Package metrics exposes Prometheus metrics for both Kalavara server roles.

Metrics are package-level collectors registered at init time. The handler
is served on a side listener (--metrics-addr) so the data and admin route
surfaces stay untouched.
*/
package metrics
