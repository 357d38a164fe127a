package vtable

import (
	"fmt"

	"vtable-bench/internal/shape"
)

// Layout 被测的内存布局
type Layout uint8

const (
	// PointerInsideObject 布局A，虚表指针在对象内部
	PointerInsideObject Layout = iota
	// PointerAlongsideObjectPointer 布局B，虚表指针在对象指针旁边
	PointerAlongsideObjectPointer
	// ValueAlongsideObjectPointer 布局C，虚表值在对象指针旁边
	ValueAlongsideObjectPointer
	// InterfaceBaseline Go原生接口值，作为对照组
	InterfaceBaseline
)

// Layouts 全部布局，按报告输出顺序排列
var Layouts = []Layout{
	PointerInsideObject,
	PointerAlongsideObjectPointer,
	ValueAlongsideObjectPointer,
	InterfaceBaseline,
}

// String 返回基准测试用例名
func (l Layout) String() string {
	switch l {
	case PointerInsideObject:
		return "vtable_pointer_inside_object"
	case PointerAlongsideObjectPointer:
		return "vtable_pointer_alongside_object_pointer"
	case ValueAlongsideObjectPointer:
		return "vtable_alongside_object_pointer"
	case InterfaceBaseline:
		return "interface_baseline"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// ParseLayout 根据用例名查找布局
func ParseLayout(name string) (Layout, error) {
	for _, l := range Layouts {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("vtable: unknown layout %q", name)
}

// Population 同一批形状在某一种布局下的实例，构造完成后只读
type Population struct {
	layout  Layout
	objects []*Object
	refs    []RefHandle
	values  []ValueHandle
	ifaces  []shape.Shape
	size    int
}

// NewPopulation 按指定布局为shapes分配对象。构造发生在计时区之外
func NewPopulation(layout Layout, shapes []shape.Shape) *Population {
	p := &Population{layout: layout, size: len(shapes)}
	switch layout {
	case PointerInsideObject:
		p.objects = BuildEmbedded(shapes)
	case PointerAlongsideObjectPointer:
		p.refs = BuildFatRef(shapes)
	case ValueAlongsideObjectPointer:
		p.values = BuildFatValue(shapes)
	case InterfaceBaseline:
		p.ifaces = append(make([]shape.Shape, 0, len(shapes)), shapes...)
	default:
		panic(fmt.Sprintf("vtable: unknown layout %d", layout))
	}
	return p
}

func (p *Population) Layout() Layout { return p.layout }

func (p *Population) Len() int { return p.size }

// Sum 用该布局对应的分派方式累加全部面积
func (p *Population) Sum() float32 {
	switch p.layout {
	case PointerInsideObject:
		return SumEmbedded(p.objects)
	case PointerAlongsideObjectPointer:
		return SumFatRef(p.refs)
	case ValueAlongsideObjectPointer:
		return SumFatValue(p.values)
	default:
		return shape.Sum(p.ifaces)
	}
}
