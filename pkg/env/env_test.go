package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	sep := string(os.PathListSeparator)

	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a"+sep+"b"+sep+"c"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a"+sep+sep+"b"+sep))
}

func TestJoinList(t *testing.T) {
	joined := JoinList("x", "y", "z")
	assert.Equal(t, []string{"x", "y", "z"}, SplitList(joined))
	assert.Equal(t, "", JoinList())
}

func TestSearchPath(t *testing.T) {
	t.Setenv("HDRLOC_TEST_SEARCH", "/one")
	got, ok := SearchPath("HDRLOC_TEST_SEARCH")
	assert.True(t, ok)
	assert.Equal(t, "/one", got)

	t.Setenv("HDRLOC_TEST_EMPTY", "")
	got, ok = SearchPath("HDRLOC_TEST_EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", got)

	_, ok = SearchPath("HDRLOC_TEST_DEFINITELY_UNSET_VARIABLE")
	assert.False(t, ok)
}

func TestEnvironment_IncludeAndPkgConfigPaths(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "include"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "lib", "pkgconfig"), 0755))

	e := New(root, "brew")
	assert.Equal(t, []string{filepath.Join(root, "include")}, e.IncludePaths())
	assert.Equal(t, []string{filepath.Join(root, "lib", "pkgconfig")}, e.PkgConfigPaths())
}

func TestEnvironment_DebianLayoutOrder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "usr", "share", "pkgconfig"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "usr", "lib", "pkgconfig"), 0755))

	got := New(root, "apt").PkgConfigPaths()
	assert.Equal(t, []string{
		filepath.Join(root, "usr", "lib", "pkgconfig"),
		filepath.Join(root, "usr", "share", "pkgconfig"),
	}, got)
}

func TestEnvironment_EmptyRoot(t *testing.T) {
	var e *Environment
	assert.Nil(t, e.IncludePaths())
	assert.Nil(t, New("", "nix").PkgConfigPaths())
}

func TestPkgConfigPath(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PKG_CONFIG_PATH", "/a"+sep+"/b")
	assert.Equal(t, []string{"/a", "/b"}, PkgConfigPath())
}

func TestPkgConfigLibDir(t *testing.T) {
	t.Setenv("PKG_CONFIG_LIBDIR", "/only/here")
	assert.Equal(t, []string{"/only/here"}, PkgConfigLibDir())

	t.Setenv("PKG_CONFIG_LIBDIR", "")
	assert.Nil(t, PkgConfigLibDir())
}
