// vtablereport 在go test之外跑一遍虚表布局基准测试，输出JSON报告。
//
//	go run ./cmd/vtablereport -f cmd/vtablereport/etc/vtablereport.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/bytedance/sonic"
	"github.com/google/gops/agent"
	"github.com/pkg/profile"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"vtable-bench/internal/harness"
)

var configFile = flag.String("f", "", "the config file, defaults are used when empty")

func main() {
	flag.Parse()

	var c Config
	if *configFile != "" {
		conf.MustLoad(*configFile, &c)
	} else if err := conf.FillDefault(&c); err != nil {
		fmt.Fprintf(os.Stderr, "fill default config: %v\n", err)
		os.Exit(1)
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = "plain"
	}
	logx.MustSetup(c.Log)

	if err := run(c); err != nil {
		logx.Error(err)
		logx.Close()
		os.Exit(1)
	}
	logx.Close()
}

func run(c Config) error {
	if c.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("start gops agent: %w", err)
		}
		defer agent.Close()
	}
	if c.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(c.CPUProfile), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logx.Infof("measuring %d shapes, seed %d", c.Population, c.Seed)
	report, err := harness.Run(ctx, c.Config)
	if err != nil {
		return err
	}
	for _, r := range report.Results {
		logx.Infow("layout measured",
			logx.Field("layout", r.Layout),
			logx.Field("iterations", r.Iterations),
			logx.Field("ns_per_op", r.NsPerOp),
			logx.Field("ns_per_shape", r.NsPerShape),
			logx.Field("allocs_per_op", r.AllocsPerOp),
		)
	}

	data, err := sonic.ConfigStd.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if c.Output == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logx.Infof("report written to %s", c.Output)
	return nil
}
