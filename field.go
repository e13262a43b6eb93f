package jos

func isValidFieldType(code byte) bool {
	switch code {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 'L', '[':
		return true
	}
	return false
}

func (p *Parser) readFieldDesc() (FieldDesc, error) {
	pos := p.cursor.Pos()
	tc, err := p.cursor.U8()
	if err != nil {
		return FieldDesc{}, err
	}
	if !isValidFieldType(tc) {
		return FieldDesc{}, newError(ErrUnknownFieldType, pos, p.cursor.buf, "code %q", tc)
	}
	name, err := p.cursor.UTFShort()
	if err != nil {
		return FieldDesc{}, err
	}
	fd := FieldDesc{Type: tc, Name: name}
	if tc == 'L' || tc == '[' {
		v, err := p.readContent(stringPosition)
		if err != nil {
			return FieldDesc{}, err
		}
		className, ok := v.(string)
		if !ok {
			return FieldDesc{}, newError(ErrDisallowedContent, pos, p.cursor.buf, "field class name did not resolve to a string")
		}
		fd.ClassName = className
	}
	return fd, nil
}

// readFieldValue also backs array element reads, which construct a bare
// FieldDesc carrying only the element type code.
func (p *Parser) readFieldValue(fd FieldDesc) (interface{}, error) {
	switch fd.Type {
	case 'B':
		return p.cursor.I8()
	case 'C':
		v, err := p.cursor.U16BE()
		if err != nil {
			return nil, err
		}
		return Char(v), nil
	case 'D':
		return p.cursor.F64BE()
	case 'F':
		return p.cursor.F32BE()
	case 'I':
		return p.cursor.I32BE()
	case 'J':
		hi, err := p.cursor.U32BE()
		if err != nil {
			return nil, err
		}
		lo, err := p.cursor.U32BE()
		if err != nil {
			return nil, err
		}
		return Long(int64(hi)<<32 | int64(lo)), nil
	case 'S':
		return p.cursor.I16BE()
	case 'Z':
		v, err := p.cursor.I8()
		if err != nil {
			return false, err
		}
		return v != 0, nil
	case 'L', '[':
		return p.readContent(nil)
	default:
		return nil, newError(ErrUnknownFieldType, p.cursor.Pos(), p.cursor.buf, "code %q", fd.Type)
	}
}
