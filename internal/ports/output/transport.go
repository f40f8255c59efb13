package output

// Transport owns the link to the drone. Both calls are fire-and-forget:
// delivery, timing and acknowledgement are the implementation's concern.
type Transport interface {
	// Connect requests that the link be established. Calling it again is harmless.
	Connect()
	// Send transmits one ASCII command string.
	Send(command string)
}
