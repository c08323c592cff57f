package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var once sync.Once

func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("FREIGHTBOARD_TEST_MODE", "1")
		if os.Getenv("DATA_SOURCE") == "" {
			_ = os.Setenv("DATA_SOURCE", "memory")
		}
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}
