package main

import (
	"testing"

	"github.com/zeromicro/go-zero/core/conf"
)

func TestLoadExampleConfig(t *testing.T) {
	var c Config
	if err := conf.Load("etc/vtablereport.yaml", &c); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Population != 100000 || c.Seed != 1 {
		t.Fatalf("population=%d seed=%d", c.Population, c.Seed)
	}
	if len(c.Layouts) != 4 || c.Layouts[0] != "vtable_pointer_inside_object" {
		t.Fatalf("layouts = %v", c.Layouts)
	}
	if c.Output != "report.json" || c.Log.Encoding != "plain" {
		t.Fatalf("output=%q encoding=%q", c.Output, c.Log.Encoding)
	}
}

func TestFillDefault(t *testing.T) {
	var c Config
	if err := conf.FillDefault(&c); err != nil {
		t.Fatalf("FillDefault() error = %v", err)
	}
	if c.Population != 100000 || c.Seed != 1 || c.Tolerance != 0.001 {
		t.Fatalf("defaults not applied: %+v", c.Config)
	}
	if c.Output != "" || c.Gops || c.Iterations != 0 {
		t.Fatalf("optional fields set: %+v", c)
	}
}
