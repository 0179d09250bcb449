package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (slash-separated, relative to root) with dummy content
func makeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("/* header */\n"), 0644))
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root,
		"a/to_find.h",
		"b/other.h",
		"c/d/e/deep.h",
		"c/deep.h.bak",
		"Case.h",
	)

	tests := []struct {
		name      string
		target    string
		root      string
		wantPath  string
		wantFound bool
	}{
		{
			name:      "single match in subdirectory",
			target:    "to_find.h",
			root:      root,
			wantPath:  filepath.Join(root, "a", "to_find.h"),
			wantFound: true,
		},
		{
			name:      "deeply nested match",
			target:    "deep.h",
			root:      root,
			wantPath:  filepath.Join(root, "c", "d", "e", "deep.h"),
			wantFound: true,
		},
		{
			name:   "sibling subtree without the file",
			target: "to_find.h",
			root:   filepath.Join(root, "b"),
		},
		{
			name:   "no case normalization",
			target: "case.h",
			root:   root,
		},
		{
			name:   "no extension normalization",
			target: "to_find",
			root:   root,
		},
		{
			name:      "root is the file itself",
			target:    "other.h",
			root:      filepath.Join(root, "b", "other.h"),
			wantPath:  filepath.Join(root, "b", "other.h"),
			wantFound: true,
		},
		{
			name:   "root is a different file",
			target: "to_find.h",
			root:   filepath.Join(root, "b", "other.h"),
		},
		{
			name:   "missing root",
			target: "to_find.h",
			root:   filepath.Join(root, "does-not-exist"),
		},
		{
			name:   "directory named like the target is not a match",
			target: "d",
			root:   root,
		},
	}

	s := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := s.Find(tt.target, tt.root)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}

func TestFind_DuplicatesAreDeterministic(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "x/dup.h", "y/dup.h", "z/w/dup.h")

	s := New(Options{})
	first, found, err := s.Find("dup.h", root)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, []string{
		filepath.Join(root, "x", "dup.h"),
		filepath.Join(root, "y", "dup.h"),
		filepath.Join(root, "z", "w", "dup.h"),
	}, first)

	for i := 0; i < 5; i++ {
		again, found, err := s.Find("dup.h", root)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, first, again)
	}
}

func TestFindAll(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "x/dup.h", "y/dup.h", "y/other.h", "z/w/dup.h")

	matches, err := New(Options{}).FindAll("dup.h", root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "x", "dup.h"),
		filepath.Join(root, "y", "dup.h"),
		filepath.Join(root, "z", "w", "dup.h"),
	}, matches)

	first, _, err := New(Options{}).Find("dup.h", root)
	require.NoError(t, err)
	assert.Equal(t, first, matches[0])
}

func TestFind_PreOrderDepthFirst(t *testing.T) {
	root := t.TempDir()
	// "a" sorts before "hit.h", so the subtree under a is exhausted first
	makeTree(t, root, "a/sub/hit.h", "hit.h")

	got, found, err := New(Options{}).Find("hit.h", root)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, filepath.Join(root, "a", "sub", "hit.h"), got)
}

func TestFind_MaxDepth(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "top.h", "one/mid.h", "one/two/low.h")

	s := New(Options{MaxDepth: 2})

	_, found, err := s.Find("top.h", root)
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = s.Find("mid.h", root)
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = s.Find("low.h", root)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFind_SymlinkCycleTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	makeTree(t, root, "a/b/file.h")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "a", "b", "loop")))

	_, found, err := New(Options{}).Find("missing.h", root)
	require.NoError(t, err)
	assert.False(t, found)

	got, found, err := New(Options{}).Find("file.h", root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(root, "a", "b", "file.h"), got)
}

func TestFind_FollowsDirectorySymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	outside := t.TempDir()
	makeTree(t, outside, "inc/linked.h")

	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(outside, "inc"), filepath.Join(root, "inc")))

	got, found, err := New(Options{}).Find("linked.h", root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(root, "inc", "linked.h"), got)
}

func TestFind_BrokenSymlinkIsNotAMatch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.h"), filepath.Join(root, "dangling.h")))

	_, found, err := New(Options{}).Find("dangling.h", root)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFind_UnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root can read any directory")
	}

	root := t.TempDir()
	makeTree(t, root, "locked/inside.h", "open/wanted.h")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	_, _, err := New(Options{}).Find("wanted.h", root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreadableDir)

	got, found, err := New(Options{SkipUnreadable: true}).Find("wanted.h", root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(root, "open", "wanted.h"), got)
}

// failingReadDir refuses to list dir and lists everything else normally
func failingReadDir(dir string) func(string) ([]os.DirEntry, error) {
	return func(name string) ([]os.DirEntry, error) {
		if name == dir {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
		}
		return os.ReadDir(name)
	}
}

func TestFind_ReadDirFailureIsFatal(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/inside.h", "b/wanted.h")
	broken := filepath.Join(root, "a")

	_, found, err := New(Options{ReadDir: failingReadDir(broken)}).Find("wanted.h", root)
	require.Error(t, err)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrUnreadableDir)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), broken)

	_, err = New(Options{ReadDir: failingReadDir(broken)}).FindAll("wanted.h", root)
	assert.ErrorIs(t, err, ErrUnreadableDir)

	got, found, err := New(Options{ReadDir: failingReadDir(broken), SkipUnreadable: true}).Find("wanted.h", root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(root, "b", "wanted.h"), got)
}

func TestFind_MatchBeforeUnreadableDir(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "a/wanted.h", "b/other.h")

	got, found, err := New(Options{ReadDir: failingReadDir(filepath.Join(root, "b"))}).Find("wanted.h", root)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(root, "a", "wanted.h"), got)
}
