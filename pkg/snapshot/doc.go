// Package snapshot caches the user's current subscription record for
// entitlement evaluation.
//
// The Service is a read-through cache over the billing subsystem: it is
// fetched once per session, exposes a tri-state indicator
// (loading / ready / error) alongside the record, and is invalidated after
// any mutation that can change plan or status. It never writes subscription
// state itself.
//
// Concurrent refreshes follow last-fetch-wins: a fetch superseded by a newer
// one discards its result, so readers only ever observe the latest resolved
// value. There is no immediate consistency between a billing mutation and
// the next read — staleness is bounded by one refetch round trip.
//
//	svc := snapshot.NewService(fetchFn,
//	    snapshot.WithLogger(logger),
//	    snapshot.WithCache(snapshot.NewMemoryCache()),
//	)
//	_ = svc.Refresh(ctx)
//
//	sub, state := svc.Current()
//
// A nil subscription in the ready state means the user has no subscription
// record and is on the implicit free plan.
package snapshot
