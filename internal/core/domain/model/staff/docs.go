// Package staff provides the Staff entity and the Role value object.
//
// Role is a closed set of variants; whether a staff member may prepare items
// for a station is answered by Role.CanPrepare rather than string comparison,
// so the capability rules live in exactly one place.
package staff
