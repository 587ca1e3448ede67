package payload

import "boscoin.io/votingsystem/lib/common"

// ExecCode is one call of a contract method; the arguments are always
// strings and the method parses them.
type ExecCode struct {
	ContractAddress string
	Method          string
	Args            []string
}

func NewExecCode(address, method string, args ...string) *ExecCode {
	return &ExecCode{
		ContractAddress: address,
		Method:          method,
		Args:            args,
	}
}

func (ec *ExecCode) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(ec)
	return
}

func (ec *ExecCode) Deserialize(encoded []byte) (err error) {
	err = common.DecodeJSONValue(encoded, ec)
	return
}
