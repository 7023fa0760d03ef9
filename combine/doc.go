// Package combine implements the two-phase ("coarse then refine")
// search composer: Search drives an IdaStar over a coarse solver0 to
// reach some state of a subgroup, then for every coarse solution found
// (not just the first) runs an inner IdaStar over solver1 — sharing
// the same cube type — to finish from there to the identity. It
// streams successively shorter total solutions (never longer than the
// last one returned) and reports FlagOptimum once a zero-length
// refinement phase proves the coarse phase alone was already optimal.
//
// solver0 and solver1 must share the same cube type C: the coarse
// phase's solution is folded back into a cube (root * product of its
// move generators) that becomes the refined phase's starting cube
// directly, with no translation step.
package combine
