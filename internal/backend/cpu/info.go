package cpu

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Info describes the host processor the backend runs on: brand, core count and
// the vector extensions gonum's assembly kernels can take advantage of.
func (cpu *CPUBackend) Info() string {
	var features []string
	for _, f := range []struct {
		id   cpuid.FeatureID
		name string
	}{
		{cpuid.SSE2, "SSE2"},
		{cpuid.AVX, "AVX"},
		{cpuid.AVX2, "AVX2"},
		{cpuid.FMA3, "FMA3"},
		{cpuid.AVX512F, "AVX512F"},
		{cpuid.ASIMD, "ASIMD"},
	} {
		if cpuid.CPU.Supports(f.id) {
			features = append(features, f.name)
		}
	}
	if len(features) == 0 {
		features = []string{"scalar"}
	}
	brand := cpuid.CPU.BrandName
	if brand == "" {
		brand = "unknown CPU"
	}
	return fmt.Sprintf("%s (%d cores, %s)", brand, cpuid.CPU.PhysicalCores, strings.Join(features, " "))
}
