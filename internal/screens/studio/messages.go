package studio

// uploadDoneMsg reports the end of a simulated upload.
type uploadDoneMsg struct {
	ClipID string
	Err    error
}
