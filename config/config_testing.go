//go:build testing

package config

import "time"

const isTesting = true

// Year the testing clock is pinned to
const TestingYear = 2024

var TestingNow = time.Date(TestingYear, time.July, 15, 12, 0, 0, 0, time.UTC)

func testingConfig() Config {
	cfg := defaultConfig()
	cfg.Env = EnvTesting
	cfg.Addr = "127.0.0.1:0"
	cfg.LogLevel = "warn"
	return cfg
}
