// Package cpu reports CPU capabilities of the running process.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant when reading benchmark
// numbers. The transforms themselves are pure Go and do not branch on them.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasFMA       bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasFMA:       cpu.X86.HasFMA,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// String lists the architecture followed by the detected flags,
// e.g. "amd64 sse2 avx avx2 fma".
func (f Features) String() string {
	parts := []string{f.Architecture}

	flags := []struct {
		on   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasFMA, "fma"},
		{f.HasNEON, "neon"},
	}

	for _, fl := range flags {
		if fl.on {
			parts = append(parts, fl.name)
		}
	}

	return strings.Join(parts, " ")
}
