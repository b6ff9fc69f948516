// Package metric provides Prometheus metrics for ut.
//
// ut is a one-shot CLI, so metrics are not scraped over HTTP. Each
// invocation records into its own registry and, when asked to, writes the
// result in text exposition format for the node_exporter textfile
// collector.
package metric
