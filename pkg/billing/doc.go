// Package billing provides a read-only client for the billing subsystem's
// subscription endpoint.
//
// The client decodes the billing API's wire shape (null max* fields meaning
// unlimited, capability booleans, ISO timestamps) into the snapshot package's
// Subscription type. It deliberately exposes nothing that mutates billing
// state: checkout, cancellation and webhook processing live in the billing
// subsystem, and the entitlement engine only observes their outcome.
package billing
