package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/config.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if is, want := cfg.LogFile, "diag.log"; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}

	if is, want := cfg.HeartbeatInterval(), 250*time.Millisecond; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}

	if is, want := cfg.Metric.Address, "127.0.0.1:9091"; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}

	if is, want := len(cfg.ContinueOn), 2; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load("testdata/no-such-file.yaml")
	if err != nil {
		t.Fatalf("is = %v, want = nil", err)
	}

	if is, want := cfg, DefaultConfig; is.LogFile != want.LogFile || is.Interval != want.Interval {
		t.Fatalf("is = %+v, want = %+v", is, want)
	}

	if is, want := cfg.HeartbeatInterval(), time.Second; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load("testdata/partial.yaml")
	if err != nil {
		t.Fatal(err)
	}

	if is, want := cfg.LogFile, DefaultConfig.LogFile; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}

	if is, want := cfg.HeartbeatInterval(), 2*time.Second; is != want {
		t.Fatalf("is = %v, want = %v", is, want)
	}
}

func TestLoad_BadInterval(t *testing.T) {
	if _, err := Load("testdata/bad-interval.yaml"); err == nil {
		t.Fatal("is = nil, want = error")
	}
}

func TestLoad_BadYaml(t *testing.T) {
	if _, err := Load("testdata/bad.yaml"); err == nil {
		t.Fatal("is = nil, want = error")
	}
}
