// Package tui implements the interactive wheel: a Bubble Tea model that maps
// keys to wheel.Wheel actions and renders the option list next to a pie
// chart drawn in terminal cells.
//
// # Layout
//
//	┌ title ───────────────────────────────────────────┐
//	│        ▼             Name  [          ]          │
//	│     (pie chart)      Color [          ]          │
//	│                      › Pizza      ■ #00ffff      │
//	│  Selected: Pizza       Tacos      ■ #ff2e97      │
//	│                      [ Spin ]                    │
//	└ keys ────────────────────────────────────────────┘
//
// # Animation
//
// A spin is driven by tea.Tick frame messages tagged with the spin's session
// id. Frames whose id does not match the active session are dropped, so a
// cancelled spin can never move the wheel again.
//
// # Focus
//
// Tab cycles between the name input, the color input, and the option list.
// Letter shortcuts (e, d, c, C, s, q, ?) only apply when the list has focus
// so they can still be typed into the inputs.
package tui
