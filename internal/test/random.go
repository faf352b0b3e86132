package test

import (
	"math/rand"

	"github.com/polkiloo/fundvault/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen + rand.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[rand.Intn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomFund builds a fund record with a string id, a name and a numeric NAV,
// the shape clients usually send.
func RandomFund() model.Fund {
	return model.Fund{
		"id":   RandomASCIIString(6, 10),
		"name": "Fund " + RandomASCIIString(4, 8),
		"nav":  float64(rand.Intn(100000)) / 100,
	}
}
