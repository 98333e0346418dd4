// Package k8sgpt provides the cluster diagnosis toolset backed by the
// k8sgpt CLI: workload analysis with optional AI explanations, backend
// authentication, and filter discovery.
package k8sgpt
