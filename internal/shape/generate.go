package shape

import (
	"fmt"
	"math/rand/v2"
)

// PopulationSize 基准测试默认的形状数量
const PopulationSize = 100_000

// NewRand 返回固定种子的PCG随机源，同一个种子总是生成同一批形状，
// 这样才能在三种布局下复现完全相同的数据
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random 先均匀选择种类，再为该种类均匀抽取参数。参数不做任何校验，
// 0值等退化形状同样保留
func Random(r *rand.Rand) Shape {
	switch k := Kind(r.IntN(KindCount)); k {
	case KindSquare:
		return Square{Side: r.Float32()}
	case KindRectangle:
		return Rectangle{Width: r.Float32(), Height: r.Float32()}
	case KindTriangle:
		return Triangle{Base: r.Float32(), Height: r.Float32()}
	case KindCircle:
		return Circle{Radius: r.Float32()}
	default:
		// IntN(KindCount)只会落在四个种类上，走到这里说明取值范围写错了
		panic(fmt.Sprintf("shape: unreachable kind %d", k))
	}
}

// Generate 按抽取顺序生成恰好n个形状
func Generate(n int, r *rand.Rand) []Shape {
	if n < 0 {
		panic(fmt.Sprintf("shape: negative population size %d", n))
	}
	shapes := make([]Shape, 0, n)
	for range n {
		shapes = append(shapes, Random(r))
	}
	return shapes
}
