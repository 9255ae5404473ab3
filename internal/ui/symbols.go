package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess   = "✓" // Spin settled
	SymbolFail      = "✗" // Error
	SymbolPending   = "○" // Nothing selected yet
	SymbolComplete  = "●" // Selected option marker
	SymbolIndicator = "▼" // Fixed pointer above the wheel
	SymbolCursor    = "›" // List cursor
)
