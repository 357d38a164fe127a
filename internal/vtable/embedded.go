package vtable

import (
	"fmt"
	"math/rand/v2"
	"unsafe"

	"vtable-bench/internal/shape"
)

// Object 布局A所有对象的公共头部：第一个字段就是虚表指针。
// 具体对象在头部之后紧跟形状参数，通过unsafe.Pointer在两者之间转换
type Object struct {
	table *Table
}

type embeddedSquare struct {
	table *Table
	shape.Square
}

type embeddedRectangle struct {
	table *Table
	shape.Rectangle
}

type embeddedTriangle struct {
	table *Table
	shape.Triangle
}

type embeddedCircle struct {
	table *Table
	shape.Circle
}

// newEmbedded 在堆上分配一个带虚表指针头部的对象
func newEmbedded(s shape.Shape) *Object {
	switch v := s.(type) {
	case shape.Square:
		return (*Object)(unsafe.Pointer(&embeddedSquare{table: &embeddedSquareTable, Square: v}))
	case shape.Rectangle:
		return (*Object)(unsafe.Pointer(&embeddedRectangle{table: &embeddedRectangleTable, Rectangle: v}))
	case shape.Triangle:
		return (*Object)(unsafe.Pointer(&embeddedTriangle{table: &embeddedTriangleTable, Triangle: v}))
	case shape.Circle:
		return (*Object)(unsafe.Pointer(&embeddedCircle{table: &embeddedCircleTable, Circle: v}))
	}
	panic(fmt.Sprintf("vtable: unknown shape %T", s))
}

// Area 先解引用对象拿到虚表，再解引用虚表拿到函数
func (o *Object) Area() float32 {
	return o.table.Area(unsafe.Pointer(o))
}

// BuildEmbedded 把形状序列按布局A逐个分配到堆上，顺序不变
func BuildEmbedded(shapes []shape.Shape) []*Object {
	objects := make([]*Object, len(shapes))
	for i, s := range shapes {
		objects[i] = newEmbedded(s)
	}
	return objects
}

// GenerateEmbedded 随机生成n个布局A的对象
func GenerateEmbedded(n int, r *rand.Rand) []*Object {
	return BuildEmbedded(shape.Generate(n, r))
}

// SumEmbedded 按顺序累加布局A对象的面积
func SumEmbedded(objects []*Object) float32 {
	var sum float32
	for _, o := range objects {
		sum += o.table.Area(unsafe.Pointer(o))
	}
	return sum
}
