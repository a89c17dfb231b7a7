package replay

import (
	"fmt"
	"strconv"
	"strings"

	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// splitPayload cuts a pipe-delimited payload into at most n fields. The last field keeps
// any remaining pipes, so free text like notes and descriptions can contain them.
func splitPayload(raw string, n int) func(i int) string {
	parts := strings.SplitN(raw, "|", n)
	return func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
}

func parseUintField(s, field string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return v, nil
}

func parseAmountField(s string) (contract.Amount, error) {
	v, err := contract.ParseAmount(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return v, nil
}

func parseAddressField(s string) (sdk.Address, error) {
	addr := strings.TrimSpace(s)
	if addr == "" {
		return "", fmt.Errorf("address required")
	}
	return sdk.Address(addr), nil
}
