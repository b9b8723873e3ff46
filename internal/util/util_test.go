package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateUID_TenDigits(t *testing.T) {
	for range 100 {
		uid := GenerateUID()
		assert.Len(t, strconv.FormatInt(uid, 10), 10)
	}
}

func TestGenerateUID_Positive(t *testing.T) {
	assert.Positive(t, GenerateUID())
}
