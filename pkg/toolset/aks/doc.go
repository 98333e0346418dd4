// Package aks provides the Azure Kubernetes Service toolset.
// It implements MCP tools wrapping `az aks` for:
//   - Cluster lifecycle (list, show, create, delete, start, stop, scale,
//     upgrade, update)
//   - Node pool lifecycle (list, show, add, delete, scale, upgrade, update)
//   - Credentials (user/admin kubeconfig, certificate rotation)
//   - Add-ons (enable, disable)
//   - Maintenance configurations (create, list, delete)
//   - Diagnostics (check-acr, command invoke, versions, upgrade profile)
//
// Every tool is a stateless one-shot invocation of the Azure CLI; results
// and errors are rendered as plain text for the calling agent.
package aks
