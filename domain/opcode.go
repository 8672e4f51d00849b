package domain

import "fmt"

// OpCode is the kind of query carried in a DNS message header.
type OpCode uint8

const (
	OpCodeQuery  OpCode = 0
	OpCodeIQuery OpCode = 1
	OpCodeStatus OpCode = 2
	OpCodeNotify OpCode = 4
	OpCodeUpdate OpCode = 5
)

var opCodeNames = map[OpCode]string{
	OpCodeQuery:  "QUERY",
	OpCodeIQuery: "IQUERY",
	OpCodeStatus: "STATUS",
	OpCodeNotify: "NOTIFY",
	OpCodeUpdate: "UPDATE",
}

// String returns the opcode mnemonic.
func (o OpCode) String() string {
	if name, ok := opCodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OPCODE%d", uint8(o))
}
