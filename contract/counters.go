package contract

import (
	"fmt"
	"strconv"

	"charity_ledger/sdk"
)

// GetCount reads the string counter under the key and defaults to zero.
// A counter that is not decimal text means corrupted state and stops execution.
func GetCount(host sdk.SDK, key string) uint64 {
	ptr := host.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("failed to decode counter %q: %v", key, err))
	}
	return n
}

// SetCount stores uint64 counters back as decimal strings for the host kv.
func SetCount(host sdk.SDK, key string, n uint64) {
	host.StateSetObject(key, strconv.FormatUint(n, 10))
}

// NextID hands out the current counter value and bumps it, so ids start at 0
// and stay dense in creation order.
func NextID(host sdk.SDK, key string) uint64 {
	id := GetCount(host, key)
	SetCount(host, key, id+1)
	return id
}

// GetAmount reads a decimal amount; a missing value counts as zero and a garbled one
// panics like any other corrupted state.
func GetAmount(host sdk.SDK, key string) Amount {
	ptr := host.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("failed to decode amount %q: %v", key, err))
	}
	return Amount(v)
}

// SetAmount writes an amount back as decimal text.
func SetAmount(host sdk.SDK, key string, v Amount) {
	host.StateSetObject(key, strconv.FormatInt(int64(v), 10))
}

// AddAmount adds delta to the amount under key and returns the new value.
func AddAmount(host sdk.SDK, key string, delta Amount) Amount {
	next := GetAmount(host, key) + delta
	SetAmount(host, key, next)
	return next
}

// UInt64ToString turns an id back into decimal text for logs or payload building.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
