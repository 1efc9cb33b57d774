package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/cwbudde/algo-uvspec/internal/config"
	"github.com/cwbudde/algo-uvspec/lineshape"
	"github.com/cwbudde/algo-uvspec/specfile"
)

var envKeys = []string{
	"UVSPEC_CONFIG", "UVSPEC_GRID", "UVSPEC_RANGE", "UVSPEC_SIGMA", "UVSPEC_SHIFT",
	"UVSPEC_OUTPUT", "UVSPEC_NOMETA", "UVSPEC_OUTFILE", "UVSPEC_JOIN", "UVSPEC_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
		_ = os.Unsetenv(k)
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uvspec.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigNew(t *testing.T) {
	convey.Convey("Given a new config", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have the documented defaults", func() {
			convey.So(cfg.Params(), convey.ShouldResemble, lineshape.Params{GridSpacing: 0.01, Range: 1.0, Sigma: 0.1})
			convey.So(cfg.Output, convey.ShouldEqual, "both")
			convey.So(cfg.NoMeta, convey.ShouldBeFalse)
			convey.So(cfg.Join, convey.ShouldBeFalse)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfigLoader(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given a config loader", t, func() {
		clearEnv(t)

		convey.Convey("When loading defaults only", func() {
			cfg, err := config.Load(ctx, "", nil)

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Sigma, convey.ShouldEqual, 0.1)
			convey.So(cfg.Grid, convey.ShouldEqual, 0.01)
		})

		convey.Convey("When loading a YAML file", func() {
			path := writeYAML(t, "grid: 0.005\nsigma: 0.25\nshift: -0.1\noutput: curve\nnometa: true\n")
			cfg, err := config.Load(ctx, path, nil)

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Grid, convey.ShouldEqual, 0.005)
			convey.So(cfg.Sigma, convey.ShouldEqual, 0.25)
			convey.So(cfg.Shift, convey.ShouldEqual, -0.1)
			convey.So(cfg.Range, convey.ShouldEqual, 1.0)
			convey.So(cfg.NoMeta, convey.ShouldBeTrue)

			mode, err := cfg.Mode()
			convey.So(err, convey.ShouldBeNil)
			convey.So(mode, convey.ShouldEqual, specfile.ModeCurve)
		})

		convey.Convey("When the file is named by UVSPEC_CONFIG and env overrides it", func() {
			path := writeYAML(t, "sigma: 0.25\nrange: 2\n")
			_ = os.Setenv("UVSPEC_CONFIG", path)
			_ = os.Setenv("UVSPEC_SIGMA", "0.4")
			_ = os.Setenv("UVSPEC_LOG_LEVEL", "debug")

			cfg, err := config.Load(ctx, "", nil)

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Sigma, convey.ShouldEqual, 0.4)
			convey.So(cfg.Range, convey.ShouldEqual, 2.0)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
		})

		convey.Convey("When flag overrides are given", func() {
			_ = os.Setenv("UVSPEC_SIGMA", "0.4")

			cfg, err := config.Load(ctx, "", map[string]any{"sigma": 0.05, "join": true, "outfile": "x.spec.txt"})

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Sigma, convey.ShouldEqual, 0.05)
			convey.So(cfg.Join, convey.ShouldBeTrue)
			convey.So(cfg.OutFile, convey.ShouldEqual, "x.spec.txt")
		})

		convey.Convey("When the file does not exist", func() {
			cfg, err := config.Load(ctx, filepath.Join(t.TempDir(), "missing.yaml"), nil)

			convey.So(cfg, convey.ShouldBeNil)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the YAML is invalid", func() {
			cfg, err := config.Load(ctx, writeYAML(t, "invalid: yaml: content: ["), nil)

			convey.So(cfg, convey.ShouldBeNil)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When sigma is not positive", func() {
			_ = os.Setenv("UVSPEC_SIGMA", "0")

			cfg, err := config.Load(ctx, "", nil)

			convey.So(cfg, convey.ShouldBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(errors.Is(err, lineshape.ErrInvalidParameter), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "sigma")
		})

		convey.Convey("When the output mode is unknown", func() {
			cfg, err := config.Load(ctx, "", map[string]any{"output": "plot"})

			convey.So(cfg, convey.ShouldBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Reset(func() {
			for _, k := range envKeys {
				_ = os.Unsetenv(k)
			}
		})
	})
}
