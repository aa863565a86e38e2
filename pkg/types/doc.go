// Package types defines the result model shared by the update managers,
// the orchestrator and the renderers: manager kinds, update statuses,
// per-manager update results and pending-update check results.
//
// A CheckResult is either a known count or indeterminate. Backends that
// cannot list pending updates without installing them report
// Indeterminate, which is kept apart from a confirmed zero and never
// contributes to the total returned by CheckResults.TotalUpdates.
//
// On the wire a CheckResult is the pair [has_updates, count] with
// count -1 for the indeterminate case.
package types
