package value

import (
	"encoding/binary"
	"errors"
	"fmt"
)

type Type byte

const (
	Nil     Type = 0x00
	SInt         = 0x01
	UInt         = 0x02
	String       = 0x03
	Boolean      = 0x04
)

const (
	True  = 0x01
	False = 0x00
)

// Value is the typed result of a contract call.
type Value struct {
	Type  Type
	value interface{}
}

func ToValue(iv interface{}) (v *Value, err error) {
	v = &Value{}

	switch iv.(type) {
	case []byte:
		b := iv.([]byte)
		if len(b) < 1 {
			iv = nil
			break
		}

		encoded := b[1:]
		switch Type(b[0]) {
		case Nil:
			iv = nil
		case String:
			iv = string(encoded)
		case SInt:
			if len(encoded) != 8 {
				return v, errors.New("broken encoded value")
			}
			iv = int64(binary.LittleEndian.Uint64(encoded))
		case UInt:
			if len(encoded) != 8 {
				return v, errors.New("broken encoded value")
			}
			iv = binary.LittleEndian.Uint64(encoded)
		case Boolean:
			if len(encoded) != 1 {
				return v, errors.New("broken encoded value")
			}
			iv = encoded[0] == True
		default:
			iv = nil
		}
	}

	v.value = iv

	switch iv.(type) {
	case nil:
		v.Type = Nil
	case string:
		v.Type = String
	case bool:
		v.Type = Boolean
	case int:
		v.Type = SInt
		v.value = int64(v.value.(int))
	case int8:
		v.Type = SInt
		v.value = int64(v.value.(int8))
	case int16:
		v.Type = SInt
		v.value = int64(v.value.(int16))
	case int32:
		v.Type = SInt
		v.value = int64(v.value.(int32))
	case int64:
		v.Type = SInt
	case uint:
		v.Type = UInt
		v.value = uint64(v.value.(uint))
	case uint8:
		v.Type = UInt
		v.value = uint64(v.value.(uint8))
	case uint16:
		v.Type = UInt
		v.value = uint64(v.value.(uint16))
	case uint32:
		v.Type = UInt
		v.value = uint64(v.value.(uint32))
	case uint64:
		v.Type = UInt
	default:
		v.Type = Nil
		v.value = nil
		err = errors.New("not yet supported type")
	}
	return
}

func (v *Value) Serialize() (encoded []byte, err error) {
	switch v.Type {
	case Nil:
		encoded = []byte{}
	case SInt:
		encoded = make([]byte, 8)
		binary.LittleEndian.PutUint64(encoded, uint64(v.value.(int64)))
	case UInt:
		encoded = make([]byte, 8)
		binary.LittleEndian.PutUint64(encoded, v.value.(uint64))
	case String:
		encoded = []byte(v.value.(string))
	case Boolean:
		if v.value.(bool) {
			encoded = []byte{True}
		} else {
			encoded = []byte{False}
		}
	}

	encoded = append([]byte{byte(v.Type)}, encoded...)

	return
}

func (v *Value) Interface() interface{} {
	return v.value
}

func (v *Value) Uint64() (uint64, bool) {
	u, ok := v.value.(uint64)
	return u, ok
}

func (v *Value) Bool() (bool, bool) {
	b, ok := v.value.(bool)
	return b, ok
}

func (v *Value) String() string {
	if v.Type == Nil {
		return ""
	}
	return fmt.Sprintf("%v", v.value)
}

func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.Type == o.Type && v.value == o.value
}

// EqualNative compares with a plain go value, like `"world"` or
// `uint64(1)`.
func (v *Value) EqualNative(iv interface{}) bool {
	o, err := ToValue(iv)
	if err != nil {
		return false
	}
	return v.Equal(o)
}
