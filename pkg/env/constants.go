package env

import (
	"path/filepath"
	"runtime"
)

// GetPackageLayout returns the include and pkg-config directories used by
// each backend once its packages are extracted under an install root
func GetPackageLayout(backend string) PackageLayout {
	switch backend {
	case "apt", "dpkg":
		return getDebianLayout()
	case "dnf", "yum", "zypper":
		return getLib64Layout()
	case "brew", "nix":
		return getFlatLayout()
	case "pacman", "apk":
		return getUsrLayout()
	case "choco":
		return getChocoLayout()
	default:
		return getDefaultLayout()
	}
}

// Debian/Ubuntu keep multiarch pkg-config dirs: usr/lib/x86_64-linux-gnu/pkgconfig
func getDebianLayout() PackageLayout {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	}

	return PackageLayout{
		Includes: []string{
			filepath.Join("usr", "include"),
			filepath.Join("usr", "include", arch+"-linux-gnu"),
			filepath.Join("usr", "local", "include"),
		},
		PkgConfig: []string{
			filepath.Join("usr", "lib", arch+"-linux-gnu", "pkgconfig"),
			filepath.Join("usr", "lib", "pkgconfig"),
			filepath.Join("usr", "share", "pkgconfig"),
		},
	}
}

// Fedora/RHEL and openSUSE use lib64 for 64-bit
func getLib64Layout() PackageLayout {
	return PackageLayout{
		Includes: []string{
			filepath.Join("usr", "include"),
		},
		PkgConfig: []string{
			filepath.Join("usr", "lib64", "pkgconfig"),
			filepath.Join("usr", "lib", "pkgconfig"),
			filepath.Join("usr", "share", "pkgconfig"),
		},
	}
}

// Homebrew bottles and Nix store paths are flat: include/, lib/pkgconfig/
func getFlatLayout() PackageLayout {
	return PackageLayout{
		Includes: []string{
			"include",
		},
		PkgConfig: []string{
			filepath.Join("lib", "pkgconfig"),
			filepath.Join("share", "pkgconfig"),
		},
	}
}

// Arch and Alpine
func getUsrLayout() PackageLayout {
	return PackageLayout{
		Includes: []string{
			filepath.Join("usr", "include"),
		},
		PkgConfig: []string{
			filepath.Join("usr", "lib", "pkgconfig"),
			filepath.Join("usr", "share", "pkgconfig"),
		},
	}
}

// Chocolatey packages vary wildly
func getChocoLayout() PackageLayout {
	return PackageLayout{
		Includes: []string{
			"include",
			filepath.Join("tools", "include"),
		},
		PkgConfig: []string{
			filepath.Join("lib", "pkgconfig"),
		},
	}
}

func getDefaultLayout() PackageLayout {
	return PackageLayout{
		Includes: []string{
			filepath.Join("usr", "include"),
			"include",
		},
		PkgConfig: []string{
			filepath.Join("usr", "lib", "pkgconfig"),
			filepath.Join("lib", "pkgconfig"),
		},
	}
}

// SystemPkgConfigDirs returns the built-in pkg-config search directories
// for the running platform
func SystemPkgConfigDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/opt/homebrew/lib/pkgconfig",
			"/usr/local/lib/pkgconfig",
			"/usr/lib/pkgconfig",
		}
	case "windows":
		return nil
	}

	var dirs []string
	for _, rel := range getDebianLayout().PkgConfig[:1] {
		dirs = append(dirs, filepath.Join("/", rel))
	}
	return append(dirs,
		"/usr/local/lib/pkgconfig",
		"/usr/local/share/pkgconfig",
		"/usr/lib64/pkgconfig",
		"/usr/lib/pkgconfig",
		"/usr/share/pkgconfig",
	)
}
