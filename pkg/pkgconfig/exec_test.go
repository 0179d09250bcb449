package pkgconfig

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/hdrloc/pkg/core"
)

// fakePkgConfig knows a single package "zlib" at version 1.3.1
const fakePkgConfig = `#!/bin/sh
case "$1" in
  --exists)
    [ "$2" = "zlib" ] && exit 0
    echo "Package $2 was not found" >&2
    exit 1 ;;
  --atleast-version=*)
    case "${1#--atleast-version=}" in
      1|1.0|1.2|1.3|1.3.1) exit 0 ;;
    esac
    exit 1 ;;
  --modversion)
    echo "1.3.1" ;;
  --cflags-only-I)
    echo "-I/opt/zlib/include -I'/opt/zlib/my inc' -I/opt/zlib/include" ;;
  *)
    exit 2 ;;
esac
`

func newFakeExec(t *testing.T) *Exec {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake pkg-config is a shell script")
	}
	bin := filepath.Join(t.TempDir(), "pkg-config")
	require.NoError(t, os.WriteFile(bin, []byte(fakePkgConfig), 0755))
	return NewExec(bin, []string{"/extra/pkgconfig"}, nil)
}

func TestExec_Probe(t *testing.T) {
	e := newFakeExec(t)

	lib, err := e.Probe(context.Background(), core.Package{Name: "zlib", MinVersion: "1.2"})
	require.NoError(t, err)
	assert.Equal(t, "zlib", lib.Name)
	assert.Equal(t, "1.3.1", lib.Version)
	assert.Equal(t, []string{"/opt/zlib/include", "/opt/zlib/my inc"}, lib.IncludePaths)
}

func TestExec_PackageMissing(t *testing.T) {
	e := newFakeExec(t)

	_, err := e.Probe(context.Background(), core.Package{Name: "openssl"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPackageNotFound)
	assert.Contains(t, err.Error(), "was not found")
}

func TestExec_VersionTooOld(t *testing.T) {
	e := newFakeExec(t)

	_, err := e.Probe(context.Background(), core.Package{Name: "zlib", MinVersion: "2.0"})
	assert.ErrorIs(t, err, ErrVersionNotSatisfied)
}

func TestExec_MissingBinary(t *testing.T) {
	e := NewExec(filepath.Join(t.TempDir(), "no-such-pkg-config"), nil, nil)

	_, err := e.Probe(context.Background(), core.Package{Name: "zlib"})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExec_Environ(t *testing.T) {
	t.Setenv("PKG_CONFIG_PATH", "/existing")
	e := NewExec("", []string{"/a", "/b"}, nil)

	environ := e.environ()
	assert.Contains(t, environ, "PKG_CONFIG_ALLOW_SYSTEM_CFLAGS=1")
	sep := string(os.PathListSeparator)
	assert.Equal(t, "PKG_CONFIG_PATH=/a"+sep+"/b"+sep+"/existing", environ[len(environ)-1])
	assert.Equal(t, DefaultBinary, e.binary)
}
