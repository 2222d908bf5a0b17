package structs

import "fmt"

const DefaultMessage = "Radar test packet"

type Payload []byte

// DefaultPayload returns a fresh copy of the test message on every call.
func DefaultPayload() Payload {
	return Payload(DefaultMessage)
}

func (p Payload) Text() string {
	return string(p)
}

// Confirmation is the line printed after a successful send.
func Confirmation(p Payload, d Destination) string {
	return fmt.Sprintf("Sent: %s -> %s:%d", p.Text(), d.IP, d.Port)
}
