// Package menu provides the menu catalog side of the order core: the MenuItem
// aggregate with its price, preparation area, and stock level, and the PrepArea
// value object identifying the station (kitchen or bar) that produces an item.
//
// The order core reads price and preparation area when snapshotting order
// items, and mutates stock only through the validated Deduct and Restock
// operations so stock can never go negative.
package menu
