// Package ui contains the Bubble Tea program that browses a catalog through a
// drilldown. The Model hosts a drilldown.Controller and stands in for every
// collaborator the controller needs, so the controller itself never touches
// Bubble Tea.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse clicks, timers, animation frames, backend
//     updates).
//   - Key presses go to the confirmation prompt, the goto prompt or the create
//     wizard when one is open, then to the filter of the current list, and
//     finally to navigation (internal/ui/navigation.go).
//   - Work the controller schedules while an update runs (settle timers,
//     animation frames, held resizes) is queued on the model and handed back to
//     Bubble Tea when the update finishes.
//
// Controller roles:
//   - Surface (surface.go): the panel strip. Each level is one terminal-wide
//     panel; sliding animates the strip offset frame by frame and view.go cuts
//     the visible window out of two neighbouring panels.
//   - Scheduler (surface.go): timers delivered as tea messages, so callbacks
//     run on the update loop.
//   - BreadcrumbBar (breadcrumb.go): the header row once the user has drilled
//     in, with clickable buttons that shrink when the trail is too wide.
//   - Confirmer (prompt.go): a yes/no question on the status row.
//
// State ownership:
//   - List state lives in internal/ui/state.Level, which tracks rows,
//     filtering, the cursor, the drilldown selection and the viewport.
//   - Record stores are provided by internal/state and filled by the
//     dispatcher from catalog events. Lists below the first show the children
//     of the selection one level up.
//   - The current location lives in a bookmark.Store shared with the
//     controller; the goto prompt and history navigation write to it.
//
// Backend interactions:
//   - A backend.Watcher polls the catalog file; Update waits for its events
//     and hands them to handleDispatch, which refreshes the stores and lists
//     and re-applies the current bookmark.
//   - Catalog mutations from the create wizard run via the command bus and
//     come back as catalogChangedMsg. Deletes run on the update loop so a
//     failure can keep the user where they are.
package ui
