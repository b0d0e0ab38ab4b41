package utils

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomSuffix returns n random base36 characters.
func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			log.Printf("ERROR: Failed to generate random suffix: %v", err)
			// Fallback keeps ids unique enough for a single process
			return time.Now().Format("150405.000")
		}
		b[i] = base36[idx.Int64()]
	}
	return string(b)
}

// NewID mints an id of the form "<epoch-ms>-<random>" with an optional
// prefix, e.g. "project-1700000000000-x7k2p9qa1".
func NewID(prefix string) string {
	id := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), randomSuffix(9))
	if prefix != "" {
		return prefix + "-" + id
	}
	return id
}

// NowMillis returns the current time as epoch milliseconds, the unit every
// timestamp in the stores uses.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
