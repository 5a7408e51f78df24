// Package geometry computes the volume of a frustum-shaped pot by
// reconstructing the two virtual cones whose difference is the frustum:
// the "big cone" obtained by extending the pot's slant sides to an apex,
// and the "small cone" sliced off below the pot's base.
//
//	      diameterTop
//	    _______________
//	    \ beta |  beta/
//	     \     |     /
//	      \    |    /   height (of pot)
//	       \___|___/
//	        \  |  /
//	         \ | /   height of small cone
//	          \|/
//	         alpha
//
// All functions are pure and operate on float64 scalars in any
// consistent linear unit; results are in the corresponding cubic unit.
// The package performs no input validation beyond the single degenerate
// guard documented on FrustumVolume: callers are expected to validate
// dimensions at the boundary, and precondition violations propagate as
// IEEE-754 infinities or NaN rather than structured errors.
package geometry
