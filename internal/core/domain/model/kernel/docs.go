// Package kernel holds the value objects shared by every aggregate in the
// restaurant domain.
//
// UUID identifies orders, menu items, staff, tables, payments and tips.
// Money carries monetary amounts with exact decimal arithmetic scaled to two
// places, which keeps bill totals, tax and service charge free of float
// drift.
//
// Both types hide their state behind constructors and validate on
// construction, so an aggregate holding a kernel value can trust it without
// re-checking. They are immutable and safe for concurrent use.
package kernel
