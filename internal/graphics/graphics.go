// Package graphics resolves the GPU selection flags and classifies surface
// errors for the frame loop.
package graphics

import (
	"errors"
	"fmt"
	"strings"

	"git.lost.host/meutraa/apex/internal/logger"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

var (
	ErrNoAdapter = errors.New("no suitable gpu adapter")

	ErrSurfaceLost     = wgpu.ErrSurfaceLost
	ErrSurfaceOutdated = wgpu.ErrSurfaceOutdated
	ErrSurfaceTimeout  = wgpu.ErrTimeout
	ErrOutOfMemory     = wgpu.ErrOutOfMemory
)

// Backends names every accepted --backend value.
var Backends = []string{"auto", "vulkan", "metal", "dx12", "dx11", "gl"}

// ParseBackend maps a --backend value to the set of backends to try.
// dx11 has no backend of its own and falls back to dx12.
func ParseBackend(name string) (gputypes.Backends, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return gputypes.BackendsAll, nil
	case "vulkan":
		return gputypes.BackendsVulkan, nil
	case "metal":
		return gputypes.BackendsMetal, nil
	case "dx12":
		return gputypes.BackendsDX12, nil
	case "dx11":
		logger.L().Warn("dx11 is not supported, using dx12")
		return gputypes.BackendsDX12, nil
	case "gl":
		return gputypes.BackendsGL, nil
	}
	return gputypes.BackendsNone, fmt.Errorf("unknown backend %q", name)
}

// ParsePowerPreference maps --power-preference to the adapter preference.
// Anything other than high means low power.
func ParsePowerPreference(name string) gputypes.PowerPreference {
	if strings.EqualFold(name, "high") {
		return gputypes.PowerPreferenceHighPerformance
	}
	return gputypes.PowerPreferenceLowPower
}

// BindGroups is the number of bind groups the circle pipeline binds.
const BindGroups = 6

// CheckLimits reports whether a device can run the conveyor pipelines.
func CheckLimits(l gputypes.Limits) error {
	if l.MaxBindGroups < BindGroups {
		return fmt.Errorf("device supports %v bind groups, %v are needed: %w", l.MaxBindGroups, BindGroups, ErrNoAdapter)
	}
	return nil
}
