package contract

import (
	"fmt"

	"github.com/CosmWasm/tinyjson"

	"charity_ledger/sdk"
)

// SaveObject encodes v with its tinyjson marshaler and stores it under key.
// Encoding into an in-memory buffer cannot fail for our record types, so a failure
// here means a broken marshaler and we stop hard, the same way a host abort would.
func SaveObject(host sdk.SDK, key string, v tinyjson.Marshaler) {
	b, err := tinyjson.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("failed to encode state object: %v", err))
	}
	host.StateSetObject(key, string(b))
}

// LoadObject decodes the value under key into v. It reports false when the key is absent.
// A value that no longer decodes means corrupted state and stops execution.
func LoadObject(host sdk.SDK, key string, v tinyjson.Unmarshaler) bool {
	ptr := host.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return false
	}
	if err := tinyjson.Unmarshal([]byte(*ptr), v); err != nil {
		panic(fmt.Sprintf("failed to decode state object: %v", err))
	}
	return true
}
