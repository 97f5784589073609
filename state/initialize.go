package state

import (
	"time"

	"github.com/rupor-github/rtfdoc/strwidth"
)

// newLocalEnv creates a new LocalEnv instance with default values. The
// Oracle starts empty; cmd/rtfdoc loads fonts into it from the configured
// catalog path once Cfg is available.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:  time.Now(),
		Oracle: strwidth.New(),
	}
}
