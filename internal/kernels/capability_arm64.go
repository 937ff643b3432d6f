//go:build arm64

package kernels

import "golang.org/x/sys/cpu"

func init() {
	hasSIMD = cpu.ARM64.HasASIMD
	initCapabilities()
}
