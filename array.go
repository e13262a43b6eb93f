package jos

func (p *Parser) readNewArray() (interface{}, error) {
	cd, err := p.readClassDesc()
	if err != nil {
		return nil, err
	}

	arr := &ArrayDesc{
		Class:   cd,
		Extends: map[string]map[string]interface{}{},
	}
	idx := p.handles.Reserve()
	p.handles.Assign(idx, arr)

	pos := p.cursor.Pos()
	n, err := p.cursor.I32BE()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, newError(ErrNegativeArrayLength, pos, p.cursor.buf, "got %d", n)
	}

	var elemCode byte
	if len(cd.Name) >= 2 {
		elemCode = cd.Name[1]
	}

	items := make([]interface{}, n)
	for i := 0; i < int(n); i++ {
		v, err := p.readFieldValue(FieldDesc{Type: elemCode})
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	arr.Items = items
	return arr, nil
}
