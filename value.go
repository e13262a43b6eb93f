package jos

// Long distinguishes a wire `long` (64-bit) from the plain int32 an `int`
// field produces.
type Long int64

// Char is a single UTF-16 code unit.
type Char uint16

func (c Char) String() string { return string(rune(c)) }

// EndBlock marks TC_ENDBLOCKDATA. readAnnotationBlock consumes it as its
// terminator and Parse drops it from the top-level sequence; a field or
// array element position holding TC_ENDBLOCKDATA yields it as the value.
type EndBlock struct{}

var endBlock = EndBlock{}

type FieldDesc struct {
	Type      byte // one of B C D F I J S Z L [
	Name      string
	ClassName string // set only when Type is L or [
}

type ClassDesc struct {
	Name             string
	SerialVersionUID string // 16 lowercase hex digits
	Flags            byte
	Fields           []FieldDesc
	Annotations      []interface{}
	Super            *ClassDesc
}

func (c *ClassDesc) IsEnum() bool { return c.Flags&scEnum != 0 }

// ancestorsRootFirst walks Super from c outward, then reverses: the order
// per-class data appears on the wire.
func ancestorsRootFirst(c *ClassDesc) []*ClassDesc {
	var chain []*ClassDesc
	for cur := c; cur != nil; cur = cur.Super {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// ObjectDesc.Extends holds each ancestor's field group keyed by class name;
// Fields is the flattened, most-derived-wins merge of all of them.
type ObjectDesc struct {
	Class   *ClassDesc
	Extends map[string]map[string]interface{}
	Fields  map[string]interface{}
}

// ArrayDesc.Extends is always empty; arrays carry no per-class field groups.
type ArrayDesc struct {
	Class   *ClassDesc
	Extends map[string]map[string]interface{}
	Items   []interface{}
}

func (a *ArrayDesc) Len() int { return len(a.Items) }

type EnumConstant struct {
	Name    string
	Class   *ClassDesc
	Extends map[string]map[string]interface{}
}

func (e EnumConstant) String() string { return e.Name }

func (e EnumConstant) EqualsString(s string) bool { return e.Name == s }
