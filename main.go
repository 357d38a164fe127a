// vtable-bench 没有可执行逻辑，三种虚表布局的对比全部通过基准测试运行：
//
//	go test -run '^$' -bench . -benchmem ./internal/vtable
//
// 需要JSON报告时使用cmd/vtablereport。
package main

func main() {}
