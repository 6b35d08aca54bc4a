// Package gonumconv converts between the dense containers of this module and
// gonum's mat types, so a Matrix or Vector can be handed to gonum routines
// (decompositions, solvers) that are deliberately absent here.
//
// Conversions always copy; neither side aliases the other's storage.
package gonumconv
