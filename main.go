package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/DeanZhuo/radar-ppi/interfaces"
	"github.com/DeanZhuo/radar-ppi/net"
	"github.com/DeanZhuo/radar-ppi/structs"
)

func main() {
	dest := structs.DefaultDestination()
	payload := structs.DefaultPayload()

	if err := run(os.Stdout, net.NewUDPSender(dest), dest, payload); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, sender interfaces.Sender, dest structs.Destination, payload structs.Payload) error {
	if err := sender.Send(payload); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, structs.Confirmation(payload, dest))
	return err
}
