// Package delegation implements the vote-delegation engine for the
// proxyvote governance layer: bounded chain resolution, the per-delegator
// delegation lifecycle, and the effective-voter entry point consumed by
// the proposal approval path.
package delegation
