package core

// Critical runs fn with interrupts masked and always restores the previous
// mask, including when fn panics.
func Critical(ic Interrupts, fn func()) {
	st := ic.Disable()
	defer ic.Restore(st)
	fn()
}
