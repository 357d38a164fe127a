package vtable

import (
	"math/rand/v2"
	"unsafe"

	"vtable-bench/internal/shape"
)

// ValueHandle 布局C的胖指针：虚表按值复制进句柄，调用时不再经过共享虚表
type ValueHandle struct {
	shape unsafe.Pointer
	table Table
}

func (h ValueHandle) Area() float32 {
	return h.table.Area(h.shape)
}

// BuildFatValue 按布局C构造句柄序列，顺序不变
func BuildFatValue(shapes []shape.Shape) []ValueHandle {
	handles := make([]ValueHandle, len(shapes))
	for i, s := range shapes {
		p, t := newObject(s)
		handles[i] = ValueHandle{shape: p, table: *t}
	}
	return handles
}

// GenerateFatValue 随机生成n个布局C的句柄
func GenerateFatValue(n int, r *rand.Rand) []ValueHandle {
	return BuildFatValue(shape.Generate(n, r))
}

// SumFatValue 按顺序累加布局C句柄的面积
func SumFatValue(handles []ValueHandle) float32 {
	var sum float32
	for _, h := range handles {
		sum += h.table.Area(h.shape)
	}
	return sum
}
