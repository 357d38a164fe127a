package shape

import "fmt"

// Kind 形状种类，封闭枚举，只有四种
type Kind uint8

const (
	KindSquare Kind = iota
	KindRectangle
	KindTriangle
	KindCircle

	// KindCount 种类总数，随机选择时的取值范围为[0, KindCount)
	KindCount = 4
)

func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "square"
	case KindRectangle:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape 四种形状的公共接口。isShape未导出，包外无法新增实现
type Shape interface {
	Kind() Kind
	Area() float32
	isShape()
}

// Square 正方形
type Square struct {
	Side float32
}

// Rectangle 长方形
type Rectangle struct {
	Width, Height float32
}

// Triangle 三角形
type Triangle struct {
	Base, Height float32
}

// Circle 圆。注意面积就是radius*radius，没有乘π
type Circle struct {
	Radius float32
}

// 面积计算都显式转换成float32：内联进求和循环后，编译器不能把乘法和加法融合成FMA，
// 否则不同布局的求和结果可能出现末位差异。

func (s Square) Area() float32    { return float32(s.Side * s.Side) }
func (r Rectangle) Area() float32 { return float32(r.Width * r.Height) }
func (t Triangle) Area() float32  { return float32(t.Base*t.Height) / 2 }
func (c Circle) Area() float32    { return float32(c.Radius * c.Radius) }

func (Square) Kind() Kind    { return KindSquare }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Triangle) Kind() Kind  { return KindTriangle }
func (Circle) Kind() Kind    { return KindCircle }

func (Square) isShape()    {}
func (Rectangle) isShape() {}
func (Triangle) isShape()  {}
func (Circle) isShape()    {}

// Sum 通过Go原生接口调用(itab+数据指针)逐个累加面积，作为对照组和测试基准
func Sum(shapes []Shape) float32 {
	var sum float32
	for _, s := range shapes {
		sum += s.Area()
	}
	return sum
}
