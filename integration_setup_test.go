//go:build integration

package mdeditor

// Notes:
// - Integration test setup: shared ConverterPool for all browser tests
// - testPool is initialized in TestMain and closed after all tests complete
// - acquireConverter registers Release with t.Cleanup()
// - Pool size is capped at 4 for CI environments to avoid resource exhaustion

import (
	"os"
	"testing"
	"time"
)

// testTimeout bounds every PDF conversion in integration tests.
const testTimeout = 30 * time.Second

// testPool is the shared ConverterPool for all integration tests.
var testPool *ConverterPool

func TestMain(m *testing.M) {
	testPool = NewConverterPool(min(ResolvePoolSize(0), 4), WithTimeout(testTimeout))

	code := m.Run()

	_ = testPool.Close()
	os.Exit(code)
}

// acquireConverter gets a converter from the shared pool with automatic cleanup.
func acquireConverter(t *testing.T) *Converter {
	t.Helper()
	conv, err := testPool.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	t.Cleanup(func() { testPool.Release(conv) })
	return conv
}
