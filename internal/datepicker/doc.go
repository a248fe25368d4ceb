// Package datepicker keeps a day/month/year calendar picker consistent by
// running a small, fixed recomputation pipeline over a single state record.
//
// # Overview
//
// The package has four parts:
//
//   - Store: owns one State, reduces actions into it and notifies
//     equality-filtered subscribers (Observe).
//   - Actions: the closed set of intents (Select, ChangeViewMode,
//     NavigateStep, NavigateTo, HoverDay, Calculate, Format, Flag,
//     SetRenderOptions). Dispatching an action is the only way to change
//     State.
//   - Graph: the derivation pipeline, an ordered list of edges
//     (watched fields, action). Each edge fires its action when the watched
//     fields change and are all ready.
//   - Container: wires a store and a graph once and exposes the interaction
//     handlers a view calls (DayHover, DaySelect, MonthSelect, ...).
//
// # Pipeline
//
// The default graph is a staged recompute:
//
//	viewMode + viewDate ──→ calculate ──→ monthsModel ──→ format ──→ formattedMonths ──┐
//	                                  ├─→ monthsCalendar ─────────────────────────────┤
//	                                  └─→ yearsCalendarModel ─────────────────────────┤
//	selectedDate ─────────────────────────────────────────────────────────────────────┤
//	hoveredDate ──────────────────────────────────────────────────────────────────────┴─→ flag
//
// flag writes flaggedMonths, flaggedMonthsCalendar and yearsCalendarFlagged,
// which no edge watches. Each stage reacts only to the previous stage's
// output, so no dispatch can re-trigger itself. Graph.Validate checks this by
// walking watched field → fired action → written fields and rejecting any
// path that revisits a field.
//
// # Ordering
//
// Dispatch is synchronous. The reducer runs to completion, then subscribers
// are notified in registration order. A subscriber that dispatches causes a
// nested, depth-first cascade that finishes before the outer Dispatch
// returns. Subscribers always compare against the current state, so a late
// notification from an outer dispatch never repeats a value already seen.
//
// For a day view on 2024-01-01, a NavigateStep of one month dispatches
// exactly:
//
//	navigateStep → calculate → format → flag
//
// The months and years grids for 2024 are equal by value before and after,
// so their edges stay quiet.
//
// # Not-ready values
//
// Calendar fields are nil and optional dates are zero until first computed.
// Edges skip silently while any watched field is not ready; this is a normal
// state, not an error.
//
// # Hover fast path
//
// DayHover dispatches HoverDay and also sets IsHovered on the cell it was
// given, so a view can repaint before the flag pass delivers a new grid.
// Month and year hover only touch the cell and dispatch nothing.
package datepicker
