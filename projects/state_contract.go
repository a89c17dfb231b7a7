package projects

import (
	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// isContractInitialized returns true once an owner config has been stored.
func isContractInitialized(host sdk.SDK) bool {
	ptr := host.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the contract configuration from state, nil if not initialized.
func loadContractConfig(host sdk.SDK) *ContractConfig {
	var cfg ContractConfig
	if !contract.LoadObject(host, ContractConfigKey, &cfg) {
		return nil
	}
	return &cfg
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(host sdk.SDK, cfg *ContractConfig) {
	contract.SaveObject(host, ContractConfigKey, *cfg)
}

// getContractOwner returns the owner address, or nil if not initialized.
func getContractOwner(host sdk.SDK) *sdk.Address {
	cfg := loadContractConfig(host)
	if cfg == nil {
		return nil
	}
	return &cfg.Owner
}

// isContractOwner is the single equality check guarding every state change.
func isContractOwner(host sdk.SDK, addr sdk.Address) bool {
	owner := getContractOwner(host)
	return owner != nil && *owner == addr
}
