package render

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

var (
	//go:embed shaders/common.wgsl
	commonShader string
	//go:embed shaders/taiko.wgsl
	taikoShader string
)

// ValidateShaders compiles both shaders on the CPU so syntax errors surface
// before a device exists.
func ValidateShaders() error {
	for name, src := range map[string]string{"common": commonShader, "taiko": taikoShader} {
		if _, err := naga.Compile(src); nil != err {
			return fmt.Errorf("unable to compile %v shader: %w", name, err)
		}
	}
	return nil
}
