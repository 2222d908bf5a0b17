package structs

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	DefaultIP   = "127.0.0.1"
	DefaultPort = 5555
)

type Destination struct {
	IP   string `json:"ip,omitempty"`
	Port int    `json:"port,omitempty"`
}

func DefaultDestination() Destination {
	return Destination{IP: DefaultIP, Port: DefaultPort}
}

func (d Destination) String() string {
	return net.JoinHostPort(d.IP, strconv.Itoa(d.Port))
}

func (d Destination) Equal(other Destination) bool {
	return strings.EqualFold(d.IP, other.IP) && d.Port == other.Port
}

// UDPAddr only accepts literal IPv4 addresses, no name lookup is done.
func (d Destination) UDPAddr() (*net.UDPAddr, error) {
	ip := net.ParseIP(d.IP).To4()
	if ip == nil {
		return nil, fmt.Errorf("invalid IPv4 address %q", d.IP)
	}
	if d.Port < 1 || d.Port > 65535 {
		return nil, fmt.Errorf("port %d out of range", d.Port)
	}
	return &net.UDPAddr{IP: ip, Port: d.Port}, nil
}
