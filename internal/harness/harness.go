// Package harness 在go test之外运行虚表布局基准测试，并汇总成报告。
//
// 同一批形状先由固定种子生成，再并行地按各布局分配好，
// 校验各布局的面积和一致后，逐个布局串行计时。构造过程不计时。
package harness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"testing"

	"github.com/zeromicro/go-zero/core/timex"
	"golang.org/x/sync/errgroup"

	"vtable-bench/internal/shape"
	"vtable-bench/internal/vtable"
)

// ErrSumMismatch 某个布局的面积和与对照组不一致，说明分派实现有误
var ErrSumMismatch = errors.New("harness: layout sum mismatch")

// Config 基准测试参数，字段标签供go-zero conf填充默认值
type Config struct {
	Population int      `json:",default=100000"`
	Seed       uint64   `json:",default=1"`
	Layouts    []string `json:",optional"`

	// Tolerance 相对误差上限
	Tolerance float64 `json:",default=0.001"`

	// Iterations 大于0时每个布局固定跑这么多次；为0时交给testing.Benchmark决定次数
	Iterations int `json:",optional"`
}

// Result 单个布局的测量结果
type Result struct {
	Layout      string  `json:"layout"`
	Shapes      int     `json:"shapes"`
	Iterations  int     `json:"iterations"`
	NsPerOp     int64   `json:"ns_per_op"`
	NsPerShape  float64 `json:"ns_per_shape"`
	BytesPerOp  int64   `json:"bytes_per_op"`
	AllocsPerOp int64   `json:"allocs_per_op"`
	Sum         float32 `json:"sum"`
}

// Report 一次完整运行的报告
type Report struct {
	Population int      `json:"population"`
	Seed       uint64   `json:"seed"`
	GoVersion  string   `json:"go_version"`
	GOOS       string   `json:"goos"`
	GOARCH     string   `json:"goarch"`
	Expected   float32  `json:"expected_sum"`
	Results    []Result `json:"results"`
}

func (c Config) layouts() ([]vtable.Layout, error) {
	if len(c.Layouts) == 0 {
		return vtable.Layouts, nil
	}
	layouts := make([]vtable.Layout, 0, len(c.Layouts))
	for _, name := range c.Layouts {
		l, err := vtable.ParseLayout(name)
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

// Run 生成形状、按布局分配、校验并计时
func Run(ctx context.Context, c Config) (*Report, error) {
	if c.Population < 0 {
		return nil, fmt.Errorf("harness: negative population %d", c.Population)
	}
	layouts, err := c.layouts()
	if err != nil {
		return nil, err
	}

	shapes := shape.Generate(c.Population, shape.NewRand(c.Seed))
	populations, err := build(ctx, layouts, shapes)
	if err != nil {
		return nil, err
	}

	expected := shape.Sum(shapes)
	for _, p := range populations {
		if got := p.Sum(); !within(got, expected, c.Tolerance) {
			return nil, fmt.Errorf("%w: %v summed %v, expected %v", ErrSumMismatch, p.Layout(), got, expected)
		}
	}

	report := &Report{
		Population: c.Population,
		Seed:       c.Seed,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		Expected:   expected,
		Results:    make([]Result, 0, len(populations)),
	}
	// 计时必须串行，否则各布局互相抢缓存和CPU
	for _, p := range populations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Results = append(report.Results, measure(p, c.Iterations))
	}
	return report, nil
}

// build 并行地为每个布局分配一份对象，返回顺序与layouts一致
func build(ctx context.Context, layouts []vtable.Layout, shapes []shape.Shape) ([]*vtable.Population, error) {
	populations := make([]*vtable.Population, len(layouts))
	g, ctx := errgroup.WithContext(ctx)
	for i, l := range layouts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			populations[i] = vtable.NewPopulation(l, shapes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("harness: build populations: %w", err)
	}
	return populations, nil
}

var sinkFloat32 float32

func measure(p *vtable.Population, iterations int) Result {
	r := Result{Layout: p.Layout().String(), Shapes: p.Len()}
	if iterations > 0 {
		r.Iterations, r.NsPerOp, r.BytesPerOp, r.AllocsPerOp = fixed(p, iterations)
	} else {
		br := testing.Benchmark(func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				sinkFloat32 = p.Sum()
			}
		})
		r.Iterations = br.N
		r.NsPerOp = br.NsPerOp()
		r.BytesPerOp = br.AllocedBytesPerOp()
		r.AllocsPerOp = br.AllocsPerOp()
	}
	if r.Shapes > 0 {
		r.NsPerShape = float64(r.NsPerOp) / float64(r.Shapes)
	}
	r.Sum = p.Sum()
	return r
}

// fixed 固定次数计时，用于测试和快速试跑
func fixed(p *vtable.Population, n int) (iterations int, nsPerOp, bytesPerOp, allocsPerOp int64) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := timex.Now()
	for i := 0; i < n; i++ {
		sinkFloat32 = p.Sum()
	}
	elapsed := timex.Since(start)
	runtime.ReadMemStats(&after)

	nsPerOp = elapsed.Nanoseconds() / int64(n)
	bytesPerOp = int64(after.TotalAlloc-before.TotalAlloc) / int64(n)
	allocsPerOp = int64(after.Mallocs-before.Mallocs) / int64(n)
	return n, nsPerOp, bytesPerOp, allocsPerOp
}

func within(got, want float32, tolerance float64) bool {
	if got == want {
		return true
	}
	diff := math.Abs(float64(got) - float64(want))
	return diff <= tolerance*math.Max(math.Abs(float64(got)), math.Abs(float64(want)))
}
