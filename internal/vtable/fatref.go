package vtable

import (
	"math/rand/v2"
	"unsafe"

	"vtable-bench/internal/shape"
)

// RefHandle 布局B的胖指针：对象指针旁边放共享虚表的指针，
// 对象本身只有形状参数。Go的非空接口值就是这种结构(itab + data)
type RefHandle struct {
	shape unsafe.Pointer
	table *Table
}

func (h RefHandle) Area() float32 {
	return h.table.Area(h.shape)
}

// BuildFatRef 按布局B构造句柄序列，顺序不变
func BuildFatRef(shapes []shape.Shape) []RefHandle {
	handles := make([]RefHandle, len(shapes))
	for i, s := range shapes {
		p, t := newObject(s)
		handles[i] = RefHandle{shape: p, table: t}
	}
	return handles
}

// GenerateFatRef 随机生成n个布局B的句柄
func GenerateFatRef(n int, r *rand.Rand) []RefHandle {
	return BuildFatRef(shape.Generate(n, r))
}

// SumFatRef 按顺序累加布局B句柄的面积
func SumFatRef(handles []RefHandle) float32 {
	var sum float32
	for _, h := range handles {
		sum += h.table.Area(h.shape)
	}
	return sum
}
