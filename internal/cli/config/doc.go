// Package config defines the ut CLI configuration.
//
// Configuration lives in ~/.ut/config.yaml and may be overridden by UT_*
// environment variables and command-line flags:
//
//	precision: millisecond
//	timezone: Asia/Tokyo
//	output: text
//	log:
//	  level: warn
//	  format: text
//	metrics:
//	  textfile: /var/lib/node_exporter/ut.prom
package config
