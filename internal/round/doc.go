// Package round implements the barrier-synchronised multi-way partition search.
//
// P workers split the inclusive interval [low, high] into P+1 segments every round.
// Each worker probes one position and publishes a direction flag: RIGHT when the
// probed value is <= target, LEFT otherwise. Together with two fixed border sentinels
// (RIGHT at the low border, LEFT at the high border) the flags form a monotone
// sequence with exactly one sign change, and the segment at that change is the only
// place the target can still be.
//
// # Round protocol
//
//	PROBING        every worker computes its probe and classifies it
//	BARRIER_1      flags, probes and matches are frozen
//	RESOLVE        the owner of the changing pair narrows [low, high] or publishes
//	               the match; the elected worker applies the edge rule
//	BARRIER_2      the new interval is visible to everyone
//
// The shared State has no locks. Each word is written by at most one worker per
// round and the two barriers order every write before the reads that depend on it.
//
// # Policies
//
// A Policy fixes the probe offset, which neighbour pair each worker owns, which pair
// only the elected worker sees, and when the rounds stop. RightLooking is the
// reference policy; LeftLooking mirrors it; RightLookingSweep stops once the interval
// holds at most P slots and checks them all in one parallel sweep.
package round
