// Package mouse handles pointer input for the editing engine: hit
// testing pointer positions against displayed text regions, classifying
// left clicks as single, double, or triple, and dispatching the
// resulting click action to the hit node's editor session.
//
// Click classification keeps a bounded history of the four most recent
// clicks; a new click counts as the n-th of a multi-click when every
// adjacent pair among the most recent n is within 2 pixels and 500 ms.
// Triple-click wins over double over single when all hold.
//
// Hit testing is first-match-in-iteration-order and does not consult
// stacking order among overlapping regions.
//
// The dispatcher and its history are not safe for concurrent use; input
// dispatch is single-threaded and strictly ordered.
package mouse
