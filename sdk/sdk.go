package sdk

// Sender identifies who signed the current transaction.
type Sender struct {
	Address Address `json:"id"`
}

// Env is the per-transaction snapshot a contract reads its caller and block height from.
type Env struct {
	ContractId  string
	TxId        string
	BlockHeight uint64
	Sender      Sender
}

// SDK is the host surface the ledgers run against. On chain this is backed by the
// runtime's db and console imports, locally by MockSDK.
type SDK interface {
	// Log writes a message to the host console so we can trace contract steps.
	Log(msg string)
	// GetEnv returns the env of the currently executing transaction.
	GetEnv() Env
	// StateGetObject fetches a key and returns nil when missing.
	StateGetObject(key string) *string
	// StateSetObject stores a key/value string pair into contract kv storage.
	StateSetObject(key string, value string)
	// StateDeleteObject removes the key entirely.
	StateDeleteObject(key string)
}
