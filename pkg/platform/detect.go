package platform

import (
	"fmt"
	"runtime"
)

// pkgConfigBinaries are tried in order; pkgconf is the drop-in replacement
// shipped by most current distributions
var pkgConfigBinaries = []string{"pkg-config", "pkgconf"}

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // pkg-config binaries found on PATH
	Preferred string   // binary used by the exec prober
}

// Detect detects the current platform and the available pkg-config binaries
func Detect() *Platform {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	for _, bin := range pkgConfigBinaries {
		if commandExists(bin) {
			p.Available = append(p.Available, bin)
		}
	}

	if len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	return p
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (pkg-config: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}
