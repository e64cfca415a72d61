package store

import (
	"testing"

	"go.uber.org/goleak"
)

// Parsing fans out across goroutines; none may outlive Load.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
