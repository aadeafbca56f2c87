package instructions

type Opcode string

const (
	CreateFile        Opcode = "CreateFile"
	DeleteAddress     Opcode = "DeleteAddress"
	CopyCell          Opcode = "CopyCell"
	MergeCells        Opcode = "MergeCells"
	SplitCell         Opcode = "SplitCell"
	AddressArithmetic Opcode = "AddressArithmetic"
	DetectAssert      Opcode = "DetectAssert"
	SearchRange       Opcode = "SearchRange"
	InsertBlankLines  Opcode = "InsertBlankLines"
	ClickAddress      Opcode = "ClickAddress"
)

var Opcodes = []Opcode{
	CreateFile,
	DeleteAddress,
	CopyCell,
	MergeCells,
	SplitCell,
	AddressArithmetic,
	DetectAssert,
	SearchRange,
	InsertBlankLines,
	ClickAddress,
}

// legacy names found in stores written by earlier versions
var legacyNames = map[string]Opcode{
	"文件生成": CreateFile,
	"删除指令": DeleteAddress,
	"复制指令": CopyCell,
	"合并":   MergeCells,
	"拆分":   SplitCell,
	"地址计算": AddressArithmetic,
	"检测指令": DetectAssert,
	"搜索指令": SearchRange,
	"换行":   InsertBlankLines,
	"点击指令": ClickAddress,
}

var known = func() map[Opcode]bool {
	m := make(map[Opcode]bool)
	for _, op := range Opcodes {
		m[op] = true
	}
	return m
}()

// Lookup resolves a stored name to an opcode.
func Lookup(name string) (Opcode, bool) {
	if op, ok := legacyNames[name]; ok {
		return op, true
	}
	op := Opcode(name)
	return op, known[op]
}
