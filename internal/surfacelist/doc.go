// Package surfacelist renders a user's surfaces as a selectable list and
// lets them create a new surface inline.
//
// The Panel never fetches anything. It subscribes to model notifications
// (surfaces received, surface created), appends one ItemEntry per surface in
// delivery order, and issues fire-and-forget commands back to the model when
// the user activates a row or commits a new title. Rows are zebra striped:
// the n-th appended row is "odd" when n is even, regardless of which
// notification produced it.
//
// Visibility is driven by the host through Show and Hide. Hide always calls
// the host observer's OnHide, even when the panel is already hidden; hosts
// rely on it to learn that a selection or creation flow has finished.
//
// At most one CreateEntry exists at a time. It commits on Enter or when it
// loses focus and is discarded on Escape. A blank title commits nothing and
// leaves the panel open.
package surfacelist
