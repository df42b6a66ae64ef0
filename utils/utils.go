package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// RandKey returns a random base64 string of keySize source bytes.
// Used for the session store key when none is configured.
func RandKey(keySize int) string {
	b := make([]byte, keySize)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}
