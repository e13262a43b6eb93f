package jos

// ContentKind numbers the way the wire numbers them: type byte minus 0x70.
type ContentKind int

const (
	KindNull ContentKind = iota
	KindReference
	KindClassDesc
	KindObject
	KindString
	KindArray
	KindClass
	KindBlockData
	KindEndBlockData
	KindReset
	KindBlockDataLong
	KindException
	KindLongString
	KindProxyClassDesc
	KindEnum
)

func (k ContentKind) String() string {
	names := [...]string{
		"Null", "Reference", "ClassDesc", "Object", "String", "Array",
		"Class", "BlockData", "EndBlockData", "Reset", "BlockDataLong",
		"Exception", "LongString", "ProxyClassDesc", "Enum",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

func containsKind(allow []ContentKind, k ContentKind) bool {
	for _, a := range allow {
		if a == k {
			return true
		}
	}
	return false
}

var (
	classDescPosition = []ContentKind{KindClassDesc, KindProxyClassDesc, KindNull, KindReference}
	stringPosition    = []ContentKind{KindString, KindLongString, KindReference}
)

type Parser struct {
	cursor   *ByteCursor
	handles  *HandleTable
	registry *Registry
}

// NewParser creates a parser over buf. A nil registry uses DefaultRegistry.
func NewParser(buf []byte, registry *Registry) *Parser {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Parser{cursor: NewByteCursor(buf), handles: newHandleTable(), registry: registry}
}

func Parse(buf []byte) ([]interface{}, error) {
	return NewParser(buf, nil).Parse()
}

func (p *Parser) Parse() ([]interface{}, error) {
	if err := p.readHeader(); err != nil {
		return nil, err
	}
	items := make([]interface{}, 0)
	for !p.cursor.AtEnd() {
		v, err := p.readContent(nil)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(EndBlock); ok {
			continue
		}
		items = append(items, v)
	}
	return items, nil
}

func (p *Parser) readHeader() error {
	magic, err := p.cursor.U16BE()
	if err != nil {
		return err
	}
	if magic != StreamMagic {
		return newError(ErrBadMagic, 0, p.cursor.buf, "got %#04x, want %#04x", magic, StreamMagic)
	}
	version, err := p.cursor.U16BE()
	if err != nil {
		return err
	}
	if version != StreamVersion {
		return newError(ErrUnsupportedVersion, 2, p.cursor.buf, "got %d, want %d", version, StreamVersion)
	}
	return nil
}

// readContent dispatches on the type-code byte. If allow is non-nil, the
// decoded kind must appear in it or decoding fails with ErrDisallowedContent.
func (p *Parser) readContent(allow []ContentKind) (interface{}, error) {
	startPos := p.cursor.Pos()
	tc, err := p.cursor.U8()
	if err != nil {
		return nil, err
	}
	if tc < TcNull || tc > TcEnum {
		return nil, newError(ErrUnknownTypeCode, startPos, p.cursor.buf, "byte %#02x", tc)
	}
	kind := ContentKind(tc - TcNull)
	if allow != nil && !containsKind(allow, kind) {
		return nil, newError(ErrDisallowedContent, startPos, p.cursor.buf, "%s not allowed here", kind)
	}
	switch kind {
	case KindNull:
		return nil, nil
	case KindReference:
		return p.readReference()
	case KindClassDesc:
		return p.readNonProxyClassDesc()
	case KindObject:
		return p.readOrdinaryObject()
	case KindString:
		s, err := p.cursor.UTFShort()
		if err != nil {
			return nil, err
		}
		return p.handles.Append(s), nil
	case KindArray:
		return p.readNewArray()
	case KindClass:
		cd, err := p.readClassDesc()
		if err != nil {
			return nil, err
		}
		return p.handles.Append(cd), nil
	case KindBlockData:
		return p.readBlockData(false)
	case KindEndBlockData:
		return endBlock, nil
	case KindReset:
		return nil, newError(ErrUnsupported, startPos, p.cursor.buf, "reset")
	case KindBlockDataLong:
		return p.readBlockData(true)
	case KindException:
		return nil, newError(ErrUnsupported, startPos, p.cursor.buf, "exception")
	case KindLongString:
		s, err := p.cursor.UTFLong()
		if err != nil {
			return nil, err
		}
		return p.handles.Append(s), nil
	case KindProxyClassDesc:
		return nil, newError(ErrUnsupported, startPos, p.cursor.buf, "proxy class descriptor")
	case KindEnum:
		return p.readEnum()
	}
	panic("jos: unreachable content kind")
}

func (p *Parser) readReference() (interface{}, error) {
	pos := p.cursor.Pos()
	wire, err := p.cursor.I32BE()
	if err != nil {
		return nil, err
	}
	v, ok := p.handles.Get(handleIndex(wire))
	if !ok {
		return nil, newError(ErrInvalidHandle, pos, p.cursor.buf, "handle %#x", wire)
	}
	return v, nil
}

func (p *Parser) readBlockData(long bool) ([]byte, error) {
	var n uint32
	if long {
		v, err := p.cursor.U32BE()
		if err != nil {
			return nil, err
		}
		n = v
	} else {
		v, err := p.cursor.U8()
		if err != nil {
			return nil, err
		}
		n = uint32(v)
	}
	return p.cursor.Slice(int(n))
}

func (p *Parser) readAnnotationBlock() ([]interface{}, error) {
	items := make([]interface{}, 0)
	for {
		v, err := p.readContent(nil)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(EndBlock); ok {
			return items, nil
		}
		items = append(items, v)
	}
}

func (p *Parser) readClassDesc() (*ClassDesc, error) {
	v, err := p.readContent(classDescPosition)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	cd, ok := v.(*ClassDesc)
	if !ok {
		return nil, newError(ErrDisallowedContent, p.cursor.Pos(), p.cursor.buf, "reference did not resolve to a class descriptor")
	}
	return cd, nil
}

func (p *Parser) readNonProxyClassDesc() (*ClassDesc, error) {
	cd := &ClassDesc{}
	name, err := p.cursor.UTFShort()
	if err != nil {
		return nil, err
	}
	cd.Name = name

	uidHex, err := p.cursor.Hex(8)
	if err != nil {
		return nil, err
	}
	cd.SerialVersionUID = uidHex

	// handle allocated before flags/fields/annotations/super, so a self-
	// referencing annotation block or super chain resolves correctly.
	idx := p.handles.Reserve()
	p.handles.Assign(idx, cd)

	flags, err := p.cursor.U8()
	if err != nil {
		return nil, err
	}
	cd.Flags = flags

	nFields, err := p.cursor.U16BE()
	if err != nil {
		return nil, err
	}
	fields := make([]FieldDesc, 0, nFields)
	for i := 0; i < int(nFields); i++ {
		fd, err := p.readFieldDesc()
		if err != nil {
			return nil, err
		}
		fields = append(fields, fd)
	}
	cd.Fields = fields

	annotations, err := p.readAnnotationBlock()
	if err != nil {
		return nil, err
	}
	cd.Annotations = annotations

	super, err := p.readClassDesc()
	if err != nil {
		return nil, err
	}
	cd.Super = super

	return cd, nil
}

// handle reserved before the name is read, assigned once it's known.
func (p *Parser) readEnum() (interface{}, error) {
	cd, err := p.readClassDesc()
	if err != nil {
		return nil, err
	}
	idx := p.handles.Reserve()
	nameVal, err := p.readContent(stringPosition)
	if err != nil {
		return nil, err
	}
	name, _ := nameVal.(string)
	ec := EnumConstant{Name: name, Class: cd, Extends: map[string]map[string]interface{}{}}
	p.handles.Assign(idx, ec)
	return ec, nil
}
