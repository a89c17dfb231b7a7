package sdk

import (
	"maps"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MockSDK keeps contract state in a plain map and routes console output to zerolog.
// It is not safe for concurrent use; every test builds its own instance.
type MockSDK struct {
	db     map[string]string
	env    Env
	logger zerolog.Logger
}

// NewMockSDK returns a host with empty state, the given sender and block height and a
// fresh transaction id.
func NewMockSDK(contractID string, sender Address, blockHeight uint64, logger zerolog.Logger) *MockSDK {
	m := &MockSDK{
		db: make(map[string]string),
		env: Env{
			ContractId:  contractID,
			BlockHeight: blockHeight,
			Sender:      Sender{Address: sender},
		},
		logger: logger.With().Str("contract", contractID).Logger(),
	}
	m.NextTx()
	return m
}

func (m *MockSDK) Log(msg string) {
	m.logger.Info().
		Str("tx", m.env.TxId).
		Uint64("height", m.env.BlockHeight).
		Msg(msg)
}

func (m *MockSDK) GetEnv() Env {
	return m.env
}

func (m *MockSDK) StateGetObject(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockSDK) StateSetObject(key, value string) {
	m.db[key] = value
}

func (m *MockSDK) StateDeleteObject(key string) {
	delete(m.db, key)
}

// SetSender switches the caller for the following calls.
func (m *MockSDK) SetSender(addr Address) {
	m.env.Sender = Sender{Address: addr}
}

// SetBlockHeight moves the simulated chain to height h.
func (m *MockSDK) SetBlockHeight(h uint64) {
	m.env.BlockHeight = h
}

// NextTx starts a new transaction and returns its id.
func (m *MockSDK) NextTx() string {
	m.env.TxId = uuid.NewString()
	return m.env.TxId
}

// Snapshot copies the whole kv store so callers can diff it after a call.
func (m *MockSDK) Snapshot() map[string]string {
	return maps.Clone(m.db)
}

// Reset drops all stored keys. Env is left untouched.
func (m *MockSDK) Reset() {
	clear(m.db)
}

// Len reports the number of stored keys.
func (m *MockSDK) Len() int {
	return len(m.db)
}
