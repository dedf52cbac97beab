package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Load(nil))

	is.Equal(cfg.GetInt("report-every"), DefaultReportEvery)
	is.Equal(cfg.GetBool("json"), false)
	is.Equal(cfg.GetInt("threads"), 0)
	is.Equal(cfg.GetString("wordfile"), "")
}

func TestLoadFlagsAndPositional(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	is.NoErr(cfg.Load([]string{"-json", "-report-every", "500", "-threads", "2", "words.txt"}))

	is.Equal(cfg.GetBool("json"), true)
	is.Equal(cfg.GetInt("report-every"), 500)
	is.Equal(cfg.GetInt("threads"), 2)
	is.Equal(cfg.GetString("wordfile"), "words.txt")
}

func TestEnvironmentOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("HANDCENSUS_THREADS", "3")
	t.Setenv("HANDCENSUS_REPORT_EVERY", "2000")

	cfg := DefaultConfig()
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt("threads"), 3)
	is.Equal(cfg.GetInt("report-every"), 2000)

	// An explicit flag still wins over the environment.
	is.NoErr(cfg.Load([]string{"-threads", "5"}))
	is.Equal(cfg.GetInt("threads"), 5)
}
