package donations

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"charity_ledger/contract"
)

// DonationRecord is written once per donation and never touched again.
type DonationRecord struct {
	Amount    contract.Amount
	Timestamp uint64 // block height at insertion
	Note      string
}

// MarshalTinyJSON writes the record as {"amount":..,"timestamp":..,"note":..}. The note
// is base64 so arbitrary bytes come back exactly as donated.
func (v DonationRecord) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"amount":`)
	out.Int64(int64(v.Amount))
	out.RawString(`,"timestamp":`)
	out.Uint64(v.Timestamp)
	out.RawString(`,"note":`)
	out.Base64Bytes([]byte(v.Note))
	out.RawByte('}')
}

// UnmarshalTinyJSON is the inverse of MarshalTinyJSON; unknown fields are skipped.
func (v *DonationRecord) UnmarshalTinyJSON(in *jlexer.Lexer) {
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
		case "amount":
			v.Amount = contract.Amount(in.Int64())
		case "timestamp":
			v.Timestamp = in.Uint64()
		case "note":
			v.Note = string(in.Bytes())
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
