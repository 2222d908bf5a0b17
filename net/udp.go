package net

import (
	"fmt"
	"io"
	"net"

	"github.com/DeanZhuo/radar-ppi/structs"
)

// UDPSender writes each payload as one datagram from a fresh, unconnected
// socket that is closed before Send returns.
type UDPSender struct {
	Destination structs.Destination
}

func NewUDPSender(dest structs.Destination) *UDPSender {
	return &UDPSender{Destination: dest}
}

func (s *UDPSender) Send(payload structs.Payload) error {
	addr, err := s.Destination.UDPAddr()
	if err != nil {
		return fmt.Errorf("resolve %s: %w", s.Destination, err)
	}

	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("open udp socket: %w", err)
	}
	defer conn.Close()

	n, err := conn.WriteToUDP(payload, addr)
	if err != nil {
		return fmt.Errorf("send to %s: %w", addr, err)
	}
	if n != len(payload) {
		return fmt.Errorf("send to %s: %w", addr, io.ErrShortWrite)
	}
	return nil
}
