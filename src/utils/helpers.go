package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// NewBookingCode returns a code like BK-3FA85F64. Collisions across eight
// random hex characters are treated as negligible, there is no retry loop.
func NewBookingCode() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("BK-%s", strings.ToUpper(hex[:8]))
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
