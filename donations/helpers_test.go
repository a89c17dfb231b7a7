package donations_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"charity_ledger/contract"
	"charity_ledger/donations"
	"charity_ledger/sdk"
)

const (
	ContractID  = "charitytestcontract"
	txSender    = sdk.Address("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	otherDonor  = sdk.Address("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	blockHeight = uint64(100)
)

// newTestLedger gives every test a clean host, the Go version of resetting state in beforeEach.
func newTestLedger(t *testing.T) (*donations.Ledger, *sdk.MockSDK) {
	t.Helper()
	host := sdk.NewMockSDK(ContractID, txSender, blockHeight, zerolog.Nop())
	return donations.New(host), host
}

// donateAs switches the sender and donates in a fresh tx.
func donateAs(t *testing.T, l *donations.Ledger, host *sdk.MockSDK, donor sdk.Address, amount int64, note string) uint64 {
	t.Helper()
	host.SetSender(donor)
	host.NextTx()
	res := l.Donate(contract.Amount(amount), note)
	require.True(t, res.Success, "donate by %s failed with %s", donor, res.Error)
	return res.Value
}
