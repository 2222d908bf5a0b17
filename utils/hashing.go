package utils

import (
	"crypto/sha1"

	"github.com/DeanZhuo/radar-ppi/structs"
	base58 "github.com/jbenet/go-base58"
)

func GetSha1Hash(data []byte) []byte {
	sha := sha1.Sum(data)
	return sha[:]
}

// Fingerprint is the base58 SHA-1 of a payload, shown by the console.
func Fingerprint(p structs.Payload) string {
	return base58.Encode(GetSha1Hash(p))
}
