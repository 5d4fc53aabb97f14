// Package structures implements the three character containers edited by the controller.
//
// None of them accepts domain.Delimiter as an element, so their contents always survive
// a round-trip through the persisted form. Items returns a copy in persistence order.
package structures
