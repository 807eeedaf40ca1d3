package models

// Update reports a cell whose display value changed during an edit.
type Update struct {
	// Address is the touched cell, e.g. "A3".
	Address string `json:"address"`
	// Display is the new display value.
	Display string `json:"display"`
}

// Edit is a single user change: new text committed to a cell.
type Edit struct {
	// Address is the edited cell, e.g. "B2".
	Address string `json:"address"`
	// Text is the literal value or formula as typed.
	Text string `json:"text"`
}
