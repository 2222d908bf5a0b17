package utils

import (
	"fmt"
	"io"
)

func DisplayHelp(w io.Writer) {
	fmt.Fprintln(w, `
help - This message
send - Send one test packet to the radar
info - Display the destination and packet
quit - Leave the console
	`)
}
