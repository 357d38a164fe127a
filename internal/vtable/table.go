// Package vtable 手工实现三种虚表布局，用来对比虚表放置位置和间接层数对
// 动态分派开销的影响：
//
//   - 布局A：对象第一个字段就是虚表指针，调用方只持有对象指针(C++风格)
//   - 布局B：胖指针{对象指针, 虚表指针}，对象本身不带类型信息(Go接口/Rust dyn风格)
//   - 布局C：胖指针{对象指针, 虚表值}，虚表里唯一的函数指针直接复制到每个句柄里
//
// 三种布局计算的是同一批形状的面积和，结果必须一致，差别只在性能上。
package vtable

import (
	"fmt"
	"unsafe"

	"vtable-bench/internal/shape"
)

// Table 虚表，只有一个槽位：面积函数，参数是指向形状参数数据的不透明指针
type Table struct {
	Area func(p unsafe.Pointer) float32
}

// 布局B和C的对象就是形状值本身，p直接指向shape.Square等
var (
	squareTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*shape.Square)(p).Area()
	}}
	rectangleTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*shape.Rectangle)(p).Area()
	}}
	triangleTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*shape.Triangle)(p).Area()
	}}
	circleTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*shape.Circle)(p).Area()
	}}
)

// 布局A的对象在形状值前面多了一个虚表指针，使用单独的一组虚表
var (
	embeddedSquareTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*embeddedSquare)(p).Area()
	}}
	embeddedRectangleTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*embeddedRectangle)(p).Area()
	}}
	embeddedTriangleTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*embeddedTriangle)(p).Area()
	}}
	embeddedCircleTable = Table{Area: func(p unsafe.Pointer) float32 {
		return (*embeddedCircle)(p).Area()
	}}
)

// newObject 把形状值复制到一块新的堆内存上，返回指向参数数据的指针和对应虚表
func newObject(s shape.Shape) (unsafe.Pointer, *Table) {
	switch v := s.(type) {
	case shape.Square:
		return unsafe.Pointer(&v), &squareTable
	case shape.Rectangle:
		return unsafe.Pointer(&v), &rectangleTable
	case shape.Triangle:
		return unsafe.Pointer(&v), &triangleTable
	case shape.Circle:
		return unsafe.Pointer(&v), &circleTable
	}
	panic(fmt.Sprintf("vtable: unknown shape %T", s))
}
