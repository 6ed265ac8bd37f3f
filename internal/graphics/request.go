package graphics

import (
	"github.com/gogpu/gogpu/gpu/types"
	"github.com/gogpu/gputypes"
)

// Request is what the window asks gogpu for when it creates the device.
type Request struct {
	API   types.GraphicsAPI
	Power gputypes.PowerPreference
	VSync bool
}

// NewRequest resolves the selection flags. gogpu picks the adapter itself,
// so a chosen adapter narrows the API to its backend and the power
// preference to its device type.
func NewRequest(backends gputypes.Backends, pref gputypes.PowerPreference, mode gputypes.PresentMode, chosen *gputypes.AdapterInfo) Request {
	r := Request{
		API:   GraphicsAPI(backends),
		Power: pref,
		VSync: VSync(mode),
	}
	if nil == chosen {
		return r
	}
	if r.API == types.GraphicsAPIAuto {
		r.API = BackendAPI(chosen.Backend)
	}
	switch chosen.DeviceType {
	case gputypes.DeviceTypeIntegratedGPU:
		r.Power = gputypes.PowerPreferenceLowPower
	case gputypes.DeviceTypeDiscreteGPU:
		r.Power = gputypes.PowerPreferenceHighPerformance
	}
	return r
}

// GraphicsAPI returns the API for a single backend. Anything wider is
// left to gogpu.
func GraphicsAPI(backends gputypes.Backends) types.GraphicsAPI {
	switch backends {
	case gputypes.BackendsVulkan:
		return types.GraphicsAPIVulkan
	case gputypes.BackendsMetal:
		return types.GraphicsAPIMetal
	case gputypes.BackendsDX12:
		return types.GraphicsAPIDX12
	case gputypes.BackendsGL:
		return types.GraphicsAPIGLES
	}
	return types.GraphicsAPIAuto
}

func BackendAPI(b gputypes.Backend) types.GraphicsAPI {
	switch b {
	case gputypes.BackendVulkan:
		return types.GraphicsAPIVulkan
	case gputypes.BackendMetal:
		return types.GraphicsAPIMetal
	case gputypes.BackendDX12:
		return types.GraphicsAPIDX12
	case gputypes.BackendGL:
		return types.GraphicsAPIGLES
	}
	return types.GraphicsAPIAuto
}

// VSync reports whether mode waits for the vertical blank.
func VSync(mode gputypes.PresentMode) bool {
	switch mode {
	case gputypes.PresentModeImmediate, gputypes.PresentModeMailbox:
		return false
	}
	return true
}
