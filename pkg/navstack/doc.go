// Package navstack tracks per-session navigation history for back
// navigation.
//
// A Stack records visited paths in order, newest last, and mirrors itself
// into a types.Store after every mutation so history survives a reload.
// A Resolver computes where "Back" should navigate from the current
// Location, the stack, and the navigation-context query parameters that
// BuildContextURL attaches to outgoing links.
//
// Peek and Pop are deliberately separate operations: Peek is safe to call
// while rendering link targets, Pop mutates and belongs in event handlers.
// Resolving a back destination during render must therefore only ever Peek.
package navstack
