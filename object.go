package jos

// handle allocated before any field is read, so a field may refer back to
// the object under construction.
func (p *Parser) readOrdinaryObject() (interface{}, error) {
	cd, err := p.readClassDesc()
	if err != nil {
		return nil, err
	}

	obj := &ObjectDesc{
		Class:   cd,
		Extends: make(map[string]map[string]interface{}),
		Fields:  make(map[string]interface{}),
	}
	idx := p.handles.Reserve()
	p.handles.Assign(idx, obj)

	for _, cls := range ancestorsRootFirst(cd) {
		group, err := p.readClassData(cls)
		if err != nil {
			return nil, err
		}
		obj.Extends[cls.Name] = group
		for k, v := range group {
			obj.Fields[k] = v
		}
	}
	return obj, nil
}

func (p *Parser) readClassData(cls *ClassDesc) (map[string]interface{}, error) {
	switch cls.Flags & 0x0f {
	case scSerializable:
		return p.readFieldsGroup(cls)
	case scWriteMethod:
		group, err := p.readFieldsGroup(cls)
		if err != nil {
			return nil, err
		}
		ann, err := p.readAnnotationBlock()
		if err != nil {
			return nil, err
		}
		group["@"] = ann
		if fn, ok := p.registry.Lookup(cls.Name, cls.SerialVersionUID); ok {
			replaced, err := fn(cls, group, ann)
			if err != nil {
				return nil, err
			}
			return replaced, nil
		}
		return group, nil
	case scExternalizable:
		return nil, newError(ErrExternalizableUnsupported, p.cursor.Pos(), p.cursor.buf, "%s", cls.Name)
	case scBlockData:
		ann, err := p.readAnnotationBlock()
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"@": ann}, nil
	default:
		return nil, newError(ErrUnknownClassFlags, p.cursor.Pos(), p.cursor.buf, "flags %#02x", cls.Flags)
	}
}

func (p *Parser) readFieldsGroup(cls *ClassDesc) (map[string]interface{}, error) {
	group := make(map[string]interface{}, len(cls.Fields))
	for _, fd := range cls.Fields {
		v, err := p.readFieldValue(fd)
		if err != nil {
			return nil, err
		}
		group[fd.Name] = v
	}
	return group, nil
}
