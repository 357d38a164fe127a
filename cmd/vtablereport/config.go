package main

import (
	"github.com/zeromicro/go-zero/core/logx"

	"vtable-bench/internal/harness"
)

// Config vtablereport的配置，基准测试参数内嵌自harness.Config
type Config struct {
	harness.Config

	// Output 报告写入的文件，为空时写到标准输出
	Output string `json:",optional"`

	// CPUProfile 非空时把CPU profile写到该目录
	CPUProfile string `json:",optional"`

	// Gops 是否启动gops agent，方便长时间运行时用gops stack/memstats观察
	Gops bool `json:",optional"`

	Log logx.LogConf `json:",optional"`
}
