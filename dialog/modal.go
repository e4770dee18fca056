// Package dialog provides the popup used to recolor a hero's bullets
//
// Modal is the generic show/hide state shared by both front ends. ColorPicker is the
// content shown inside it. Neither draws anything; front ends render from their state.
package dialog

// Modal is a show/hide overlay state with no business logic of its own
type Modal struct {
	open    bool
	onClose func()
}

// IsOpen reports visibility
func (m *Modal) IsOpen() bool {
	return m.open
}

// Open shows the modal
func (m *Modal) Open() {
	m.open = true
}

// Close hides the modal; the close callback fires only on an open to closed transition
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	if m.onClose != nil {
		m.onClose()
	}
}

// SetOnClose registers a callback for backdrop or explicit close
func (m *Modal) SetOnClose(fn func()) {
	m.onClose = fn
}
