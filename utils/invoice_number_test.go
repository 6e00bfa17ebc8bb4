package utils

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextInvoiceNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^INV-[0-9A-Z]+$`)
	num := NextInvoiceNumber()
	assert.Regexp(t, pattern, num)
}

func TestNextInvoiceNumberStrictlyIncreasing(t *testing.T) {
	decode := func(num string) int64 {
		raw := strings.TrimPrefix(num, "INV-")
		v, err := strconv.ParseInt(strings.ToLower(raw), 36, 64)
		require.NoError(t, err)
		return v
	}

	prev := decode(NextInvoiceNumber())
	for i := 0; i < 100; i++ {
		cur := decode(NextInvoiceNumber())
		assert.Greater(t, cur, prev)
		prev = cur
	}
}
