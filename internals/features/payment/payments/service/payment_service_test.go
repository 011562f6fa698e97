package service

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnPattern = regexp.MustCompile(`^TXN_(\d+)_([A-Z0-9]{6})$`)

func TestNewTransactionIDFormat(t *testing.T) {
	id := NewTransactionID()

	match := txnPattern.FindStringSubmatch(id)
	require.NotNil(t, match, "format id transaksi: %s", id)

	nanos, err := strconv.ParseInt(match[1], 10, 64)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().UnixNano(), nanos, float64(5*time.Second))

	assert.Equal(t, strings.ToUpper(match[2]), match[2])
}

func TestNewTransactionIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTransactionID()
		assert.False(t, seen[id], "id duplikat: %s", id)
		seen[id] = true
	}
}
