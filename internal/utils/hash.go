package utils

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashSHA1Hex returns the hex-encoded SHA-1 digest of data.
//
// SHA-1 is only used where a remote API prescribes it, such as
// signing image host upload requests. It must not be used for passwords.
//
// Example usage:
//
//	signature := utils.HashSHA1Hex("folder=blog&timestamp=1700000000" + apiSecret)
func HashSHA1Hex(data string) string {
	sum := sha1.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}
