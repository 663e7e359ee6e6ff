// Package ui contains the Bubble Tea program that hosts the surface list.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. An open note
//     form gets key presses first; otherwise messages are routed through a
//     typed handler registry. Key presses go to the surface list while it is
//     visible and to the host bindings (open list, new note, comment, quit)
//     when it is not.
//   - The data model publishes notifications on whatever goroutine made the
//     change. A backend.Feed queues them; waitForModelEvent hands them to
//     Update one at a time, where Feed.Deliver replays them to the panel and
//     to the host's own subscription.
//
// Background work:
//   - Surfaces are fetched a page at a time through the command bus. Each
//     page lands as a "surfaces received" notification; pageLoadedMsg only
//     reports progress and schedules the next page after the configured
//     interval.
//   - Notes and comments are posted the same way and show up through
//     NoteCreated and CommentAdded notifications.
//
// The host learns that the list closed through surfacelist.Observer. The
// selected surface itself arrives later as a SurfaceSelected notification.
package ui
