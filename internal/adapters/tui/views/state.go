package views

// ViewState holds what every view tracks: its size and a status line
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage shows a status message
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err as the status message
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.SetMessage("", false)
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// SwitchToBrowserMsg returns to the tree
type SwitchToBrowserMsg struct{}
