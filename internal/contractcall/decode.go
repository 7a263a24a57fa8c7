package contractcall

import (
	"fmt"

	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// Decode converts a contract return value into a native Go value suitable for
// logging. Unsupported types are rendered as their XDR type name.
func Decode(v xdr.ScVal) any {
	switch v.Type {
	case xdr.ScValTypeScvVoid:
		return nil
	case xdr.ScValTypeScvBool:
		return bool(v.MustB())
	case xdr.ScValTypeScvU32:
		return uint32(v.MustU32())
	case xdr.ScValTypeScvI32:
		return int32(v.MustI32())
	case xdr.ScValTypeScvU64:
		return uint64(v.MustU64())
	case xdr.ScValTypeScvI64:
		return int64(v.MustI64())
	case xdr.ScValTypeScvTimepoint:
		return uint64(v.MustTimepoint())
	case xdr.ScValTypeScvString:
		return string(v.MustStr())
	case xdr.ScValTypeScvSymbol:
		return string(v.MustSym())
	case xdr.ScValTypeScvBytes:
		return []byte(v.MustBytes())
	case xdr.ScValTypeScvAddress:
		return decodeAddress(v.MustAddress())
	case xdr.ScValTypeScvVec:
		vec := v.MustVec()
		if vec == nil {
			return []any{}
		}

		out := make([]any, len(*vec))
		for i, item := range *vec {
			out[i] = Decode(item)
		}
		return out
	case xdr.ScValTypeScvMap:
		m := v.MustMap()
		if m == nil {
			return map[string]any{}
		}

		out := make(map[string]any, len(*m))
		for _, entry := range *m {
			out[fmt.Sprint(Decode(entry.Key))] = Decode(entry.Val)
		}
		return out
	default:
		return v.Type.String()
	}
}

// decodeAddress renders an ScAddress as its strkey form.
func decodeAddress(address xdr.ScAddress) string {
	switch address.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		accountID := address.MustAccountId()
		return accountID.Address()
	case xdr.ScAddressTypeScAddressTypeContract:
		contractID := address.MustContractId()
		encoded, err := strkey.Encode(strkey.VersionByteContract, contractID[:])
		if err != nil {
			return fmt.Sprintf("invalid_contract: %v", err)
		}
		return encoded
	default:
		return address.Type.String()
	}
}
