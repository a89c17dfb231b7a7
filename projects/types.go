package projects

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"charity_ledger/contract"
	"charity_ledger/sdk"
)

// Project is a named funding target. Active is set at creation and not toggled yet;
// TotalSpent is kept for layout parity with the on-chain map and stays zero.
type Project struct {
	ID             uint64
	Name           string
	Description    string
	Active         bool
	TotalAllocated contract.Amount
	TotalSpent     contract.Amount
}

// Allocation records one transfer of funds to a project. Immutable once written.
type Allocation struct {
	ID        uint64
	ProjectID uint64
	Amount    contract.Amount
	Timestamp uint64 // block height at insertion
}

// ContractConfig holds the privileged identity allowed to create projects and allocate.
type ContractConfig struct {
	Owner sdk.Address
}

// MarshalTinyJSON stores name and description as base64 so free text with any bytes
// round-trips unchanged.
func (v Project) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"id":`)
	out.Uint64(v.ID)
	out.RawString(`,"name":`)
	out.Base64Bytes([]byte(v.Name))
	out.RawString(`,"desc":`)
	out.Base64Bytes([]byte(v.Description))
	out.RawString(`,"active":`)
	out.Bool(v.Active)
	out.RawString(`,"allocated":`)
	out.Int64(int64(v.TotalAllocated))
	out.RawString(`,"spent":`)
	out.Int64(int64(v.TotalSpent))
	out.RawByte('}')
}

func (v *Project) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "id":
			v.ID = in.Uint64()
		case "name":
			v.Name = string(in.Bytes())
		case "desc":
			v.Description = string(in.Bytes())
		case "active":
			v.Active = in.Bool()
		case "allocated":
			v.TotalAllocated = contract.Amount(in.Int64())
		case "spent":
			v.TotalSpent = contract.Amount(in.Int64())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func (v Allocation) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"id":`)
	out.Uint64(v.ID)
	out.RawString(`,"project":`)
	out.Uint64(v.ProjectID)
	out.RawString(`,"amount":`)
	out.Int64(int64(v.Amount))
	out.RawString(`,"timestamp":`)
	out.Uint64(v.Timestamp)
	out.RawByte('}')
}

func (v *Allocation) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "id":
			v.ID = in.Uint64()
		case "project":
			v.ProjectID = in.Uint64()
		case "amount":
			v.Amount = contract.Amount(in.Int64())
		case "timestamp":
			v.Timestamp = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

func (v ContractConfig) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"owner":`)
	out.String(v.Owner.String())
	out.RawByte('}')
}

func (v *ContractConfig) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "owner":
			v.Owner = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
