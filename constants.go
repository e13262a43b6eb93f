package jos

// The following symbols in `java.io.ObjectStreamConstants` define
// the terminal and constant values expected in a stream.
const (
	StreamMagic   uint16 = 0xaced
	StreamVersion uint16 = 5

	TcNull           byte = 0x70
	TcReference      byte = 0x71
	TcClassdesc      byte = 0x72
	TcObject         byte = 0x73
	TcString         byte = 0x74
	TcArray          byte = 0x75
	TcClass          byte = 0x76
	TcBlockdata      byte = 0x77
	TcEndblockdata   byte = 0x78
	TcReset          byte = 0x79
	TcBlockdatalong  byte = 0x7a
	TcException      byte = 0x7b
	TcLongstring     byte = 0x7c
	TcProxyclassdesc byte = 0x7d
	TcEnum           byte = 0x7e

	baseWireHandle int32 = 0x7e0000
)

// The low nibble of a class descriptor's flags byte selects the per-class
// data layout; bit 0x10 marks the class as an enum.
const (
	scSerializable   byte = 0x02
	scWriteMethod    byte = 0x03
	scExternalizable byte = 0x04
	scBlockData      byte = 0x0c
	scEnum           byte = 0x10
)
