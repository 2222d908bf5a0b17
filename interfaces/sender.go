package interfaces

import "github.com/DeanZhuo/radar-ppi/structs"

type Sender interface {
	Send(payload structs.Payload) error
}
