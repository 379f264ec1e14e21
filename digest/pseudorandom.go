package digest

import (
	"crypto/hmac"
	"crypto/sha512"
)

// HMACSHA512 returns the 64 byte HMAC-SHA512 of message keyed by key.
func HMACSHA512(message, key []byte) []byte {
	mac := hmac.New(sha512.New, key)
	_, _ = mac.Write(message)
	return mac.Sum(nil)
}
