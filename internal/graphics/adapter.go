package graphics

import (
	"fmt"
	"io"

	"git.lost.host/meutraa/apex/internal/logger"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

// Adapters enumerates the adapters of every registered backend in
// backends. Backends that fail to create an instance are skipped.
func Adapters(backends gputypes.Backends) []gputypes.AdapterInfo {
	var infos []gputypes.AdapterInfo
	for _, variant := range hal.AvailableBackends() {
		if !backends.Contains(variant) {
			continue
		}
		backend, ok := hal.GetBackend(variant)
		if !ok {
			continue
		}
		instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Backends: backends})
		if nil != err {
			logger.L().Debug("backend unavailable", "backend", variant, "err", err)
			continue
		}
		for _, exposed := range instance.EnumerateAdapters(nil) {
			info := exposed.Info
			if info.Backend == gputypes.BackendEmpty {
				info.Backend = variant
			}
			infos = append(infos, info)
		}
		instance.Destroy()
	}
	return infos
}

// Choose returns the adapter at index, or when index is negative the first
// adapter matching the power preference, falling back to the first one.
func Choose(adapters []gputypes.AdapterInfo, index int, pref gputypes.PowerPreference) (int, error) {
	if len(adapters) == 0 {
		return -1, ErrNoAdapter
	}
	if index >= 0 {
		if index >= len(adapters) {
			return -1, fmt.Errorf("gpu %v of %v: %w", index, len(adapters), ErrNoAdapter)
		}
		return index, nil
	}

	want := gputypes.DeviceTypeIntegratedGPU
	if pref == gputypes.PowerPreferenceHighPerformance {
		want = gputypes.DeviceTypeDiscreteGPU
	}
	for i, a := range adapters {
		if a.DeviceType == want {
			return i, nil
		}
	}
	return 0, nil
}

func WriteAdapters(w io.Writer, adapters []gputypes.AdapterInfo) error {
	if _, err := fmt.Fprintln(w, "Available GPUs:"); nil != err {
		return err
	}
	for i, a := range adapters {
		if _, err := fmt.Fprintf(w, "- [%v] %v (%v, %v)\n", i, a.Name, a.DeviceType, a.Backend); nil != err {
			return err
		}
	}
	return nil
}
