//go:build !rp2040

package usbhid

// Default returns a discarding sink on hosts without a USB device stack.
func Default() Sink { return Nop{} }
