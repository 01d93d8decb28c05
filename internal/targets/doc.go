// Package targets computes which declared targets of a project are reachable
// from a set of seed names. Reachability follows depends_on lists and the
// before_targets/after_targets hooks other targets attach to active ones.
//
// Target conditions are not consulted: a target is active when its tasks are
// worth inspecting, not when it is certain to run. Callers re-check the
// conditions of the individual tasks they act on.
package targets
