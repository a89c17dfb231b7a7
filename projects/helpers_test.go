package projects_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"charity_ledger/contract"
	"charity_ledger/projects"
	"charity_ledger/sdk"
)

const (
	ContractID   = "charitytestcontract"
	ownerAddress = sdk.Address("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	outsider     = sdk.Address("ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG")
	blockHeight  = uint64(100)
)

// newTestLedger starts from empty state with the owner as sender.
func newTestLedger(t *testing.T) (*projects.Ledger, *sdk.MockSDK) {
	t.Helper()
	host := sdk.NewMockSDK(ContractID, ownerAddress, blockHeight, zerolog.Nop())
	return projects.New(host, ownerAddress), host
}

// createDefaultProject creates a project as owner and returns its id.
func createDefaultProject(t *testing.T, l *projects.Ledger) uint64 {
	t.Helper()
	res := l.CreateProject("Education Fund", "Supporting education in underserved areas")
	require.True(t, res.Success, "project create failed with %s", res.Error)
	return res.Value
}

// allocate allocates as whoever is the current sender and requires success.
func allocate(t *testing.T, l *projects.Ledger, projectID uint64, amount int64) uint64 {
	t.Helper()
	res := l.AllocateFunds(projectID, contract.Amount(amount))
	require.True(t, res.Success, "allocate to %d failed with %s", projectID, res.Error)
	return res.Value
}
