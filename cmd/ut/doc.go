// Package main provides the entry point for ut.
//
// ut converts unix timestamps to human-readable dates and generates
// timestamps for preset dates:
//
//	ut parse 1715953500
//	ut -P millisecond -z Asia/Tokyo parse 1715953500123
//	ut parse -- -1
//	ut generate -b tomorrow -p millisecond
//	ut precisions
//
// Defaults come from ~/.ut/config.yaml and UT_* environment variables.
package main
