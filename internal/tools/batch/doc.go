// Package batch provides shared helpers for MCP tools that operate on
// many Gmail items at once: parsing parameters that accept a single
// value or an array, running an operation per item with partial-failure
// tolerance, and formatting the aggregated results.
package batch
