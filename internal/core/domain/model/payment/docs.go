// Package payment contains the payment aggregate and the tip entity.
//
// A payment settles part or all of an order's total. Cash settles
// immediately; card and mobile money pass through a processing state and
// are completed or failed asynchronously. Completed payments can be
// refunded. Transaction identifiers are unique across the system so a
// retried gateway callback cannot record the same settlement twice.
package payment
