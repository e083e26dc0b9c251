// Package inventory records stock movements as an append-only ledger.
// The current stock level lives on the menu item; the ledger explains how
// it got there and lets a manager audit sales, restocks and waste.
package inventory
