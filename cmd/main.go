package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DeanZhuo/radar-ppi/interfaces"
	"github.com/DeanZhuo/radar-ppi/net"
	"github.com/DeanZhuo/radar-ppi/structs"
	"github.com/DeanZhuo/radar-ppi/utils"
	"gopkg.in/readline.v1"
)

func main() {
	// Operator console for bench testing the radar display
	rl, err := readline.New("> ")
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	dest := structs.DefaultDestination()
	sender := net.NewUDPSender(dest)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}
		if !handle(os.Stdout, sender, dest, line) {
			break
		}
	}
}

// handle runs one console command and reports whether the console should
// keep reading.
func handle(out io.Writer, sender interfaces.Sender, dest structs.Destination, line string) bool {
	input := strings.Fields(line)
	if len(input) == 0 {
		return true
	}

	switch input[0] {
	case "help":
		utils.DisplayHelp(out)
	case "send":
		payload := structs.DefaultPayload()
		if err := sender.Send(payload); err != nil {
			fmt.Fprintln(out, err.Error())
			return true
		}
		fmt.Fprintln(out, structs.Confirmation(payload, dest))
	case "info":
		payload := structs.DefaultPayload()
		fmt.Fprintln(out, "Destination:", dest)
		fmt.Fprintf(out, "Payload: %q (%d bytes)\n", payload.Text(), len(payload))
		fmt.Fprintln(out, "Fingerprint:", utils.Fingerprint(payload))
	case "quit", "exit":
		return false
	default:
		utils.DisplayHelp(out)
	}
	return true
}
