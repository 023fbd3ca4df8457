package env

import (
	"os"
)

func init() {
	// Gorgonia's tensor backend still links go4.org/unsafe/assume-no-moving-gc,
	// which refuses to start on newer Go releases unless told otherwise.
	os.Setenv("ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH", "go1.24")
}
