// Package ui provides the Bubble Tea host for the datepicker.
//
// # Architecture Overview
//
// The UI owns no calendar logic. New subscribes to a datepicker.Container for
// the flagged day, month and year grids, the render options and the selected
// value; every delivery lands in a grids record shared by all copies of the
// Model. Key presses are translated into the container's gesture methods
// (DayHover, DaySelect, MonthSelect, NavigateTo, ChangeViewMode), and the
// container's derivation pipeline produces the next grids synchronously
// before Update returns.
//
// # Cursor and Hover
//
// The cursor addresses a cell by calendar index, row and column. Moving it
// reports the pointer leaving the old cell and entering the new one, so the
// keyboard behaves like a mouse hovering over the grid. Cells of adjacent
// months can hold the cursor but are never hovered or selected.
//
// # Keys
//
//   - h/j/k/l or arrows: move the cursor
//   - [ and ]: previous and next month, year or years window
//   - enter: select the day, or open the month or year under the cursor
//   - d/m/y: switch to the day, month or year grid
//   - t: select today
//   - T: cycle theme
//   - ?: toggle full help
//   - q/esc/ctrl+c: quit
//
// The theme and the last view mode are saved to the prefs file when the theme
// changes and on quit.
package ui
