package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/careerpath/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		// Point the dotenv layer at a file that does not exist unless a case sets it.
		_ = os.Setenv(config.EnvDotFile, filepath.Join(t.TempDir(), "missing.env"))
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, ".")
				convey.So(cfg.PageSize, convey.ShouldEqual, "A4")
				convey.So(cfg.DefaultTraitScore, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CAREERPATH_OUTPUT_DIR", "/tmp/reports")
			_ = os.Setenv("CAREERPATH_LOG_LEVEL", "debug")
			_ = os.Setenv("CAREERPATH_PAGE_SIZE", "Letter")
			_ = os.Setenv("CAREERPATH_DEFAULT_TRAIT_SCORE", "40")
			_ = os.Setenv("CAREERPATH_METRICS_FILE", "/tmp/careerpath.prom")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "/tmp/reports")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.PageSize, convey.ShouldEqual, "Letter")
				convey.So(cfg.DefaultTraitScore, convey.ShouldEqual, 40)
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/tmp/careerpath.prom")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
output_dir: "/srv/exports"
page_size: A5
report_title: "Hasil Tes"
log_format: json
`
			tmpFile := createTempConfigFile(t, yamlContent)
			_ = os.Setenv(config.EnvConfig, tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "/srv/exports")
				convey.So(cfg.PageSize, convey.ShouldEqual, "A5")
				convey.So(cfg.ReportTitle, convey.ShouldEqual, "Hasil Tes")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, "output_dir: /from/file\npage_size: A3\n")
			_ = os.Setenv(config.EnvConfig, tmpFile)
			_ = os.Setenv("CAREERPATH_OUTPUT_DIR", "/from/env")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "/from/env")
				convey.So(cfg.PageSize, convey.ShouldEqual, "A3")
			})
		})

		convey.Convey("When a .env file provides values", func() {
			dotFile := filepath.Join(t.TempDir(), "test.env")
			convey.So(os.WriteFile(dotFile, []byte("CAREERPATH_REPORT_TITLE=From Dotenv\nCAREERPATH_PAGE_SIZE=Legal\n"), 0o600), convey.ShouldBeNil)
			_ = os.Setenv(config.EnvDotFile, dotFile)
			_ = os.Setenv("CAREERPATH_PAGE_SIZE", "A5")

			cfg, err := config.Load(ctx)

			convey.Convey("Then unset variables should be filled and set ones kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ReportTitle, convey.ShouldEqual, "From Dotenv")
				convey.So(cfg.PageSize, convey.ShouldEqual, "A5")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv(config.EnvConfig, tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv(config.EnvConfig, "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty output dir", func() {
			_ = os.Setenv("CAREERPATH_OUTPUT_DIR", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "output_dir must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("CAREERPATH_DEFAULT_TRAIT_SCORE", "not_a_number")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the default trait score is not finite", func() {
			for _, v := range []string{"NaN", "Inf", "-Inf"} {
				_ = os.Setenv("CAREERPATH_DEFAULT_TRAIT_SCORE", v)

				cfg, err := config.Load(ctx)

				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "default_trait_score")
				convey.So(cfg, convey.ShouldBeNil)
			}
		})
	})
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func clearConfigEnvVars() {
	for _, key := range []string{
		config.EnvConfig,
		config.EnvDotFile,
		"CAREERPATH_LOG_LEVEL",
		"CAREERPATH_LOG_FORMAT",
		"CAREERPATH_OUTPUT_DIR",
		"CAREERPATH_METRICS_FILE",
		"CAREERPATH_PAGE_SIZE",
		"CAREERPATH_REPORT_TITLE",
		"CAREERPATH_DEFAULT_TRAIT_SCORE",
	} {
		_ = os.Unsetenv(key)
	}
}
