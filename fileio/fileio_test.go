// Copyright © 2025 Strelka contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package fileio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOpenSave(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	p := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(p, []byte("package main\n\nfunc main() {}\n"), 0600))

	l := NewLocal(nil)
	opened, err := l.Open(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "package main\n\nfunc main() {}\n", opened.Content)
	assert.Equal(t, "Go", opened.Language)
	assert.True(t, filepath.IsAbs(opened.Path))

	require.NoError(t, l.Save(ctx, opened.Path, "changed"))
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "changed", string(data))
	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLocalRejectsBinary(t *testing.T) {
	p := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(p, []byte{0x00, 0x01, 0x02, 0x00, 0xff}, 0644))
	_, err := NewLocal(nil).Open(context.Background(), p)
	assert.ErrorIs(t, err, ErrBinary)
}

func TestLocalMissingFile(t *testing.T) {
	_, err := NewLocal(nil).Open(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLocalSaveWithoutPath(t *testing.T) {
	assert.ErrorIs(t, NewLocal(nil).Save(context.Background(), "", "x"), ErrNoPath)
}

func TestLocalPick(t *testing.T) {
	_, err := NewLocal(nil).Pick(context.Background(), "/")
	assert.ErrorIs(t, err, ErrCancelled)

	l := NewLocal(PickerFunc(func(_ context.Context, dir string) (string, error) {
		return filepath.Join(dir, "a.txt"), nil
	}))
	got, err := l.Pick(context.Background(), "/tmp")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.txt", got)
}

func TestLocalReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "z"), 0755))

	entries, err := NewLocal(nil).ReadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "z", Path: filepath.Join(dir, "z"), Dir: true}, entries[0])
	assert.Equal(t, "a.txt", entries[1].Name)
	assert.Equal(t, "b.txt", entries[2].Name)
}

func TestLocalResolveDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	want, err := filepath.EvalSymlinks(filepath.Join(dir, "sub"))
	require.NoError(t, err)
	got, err := NewLocal(nil).ResolveDir(ctx, filepath.Join(dir, "sub", "..", "sub"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewLocal(nil).ResolveDir(ctx, file)
	assert.ErrorIs(t, err, ErrNotDir)
	_, err = NewLocal(nil).ResolveDir(ctx, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestMemoryResolveDir(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(map[string]string{"/x/sub/b.txt": "world"})

	got, err := m.ResolveDir(ctx, "/x/sub/../")
	require.NoError(t, err)
	assert.Equal(t, "/x", got)

	_, err = m.ResolveDir(ctx, "/x/sub/b.txt")
	assert.ErrorIs(t, err, ErrNotDir)
	_, err = m.ResolveDir(ctx, "/y")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(map[string]string{
		"/x/a.txt":     "hello",
		"/x/sub/b.txt": "world",
	})

	opened, err := m.Open(ctx, "/x/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", opened.Content)

	_, err = m.Open(ctx, "/x/none")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, m.Save(ctx, "/x/a.txt", "bye"))
	text, _ := m.Contents("/x/a.txt")
	assert.Equal(t, "bye", text)

	entries, err := m.ReadDir(ctx, "/x")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "sub", Path: "/x/sub", Dir: true},
		{Name: "a.txt", Path: "/x/a.txt"},
	}, entries)

	_, err = m.Pick(ctx, "/x")
	assert.ErrorIs(t, err, ErrCancelled)
	m.Picked = "/x/a.txt"
	got, err := m.Pick(ctx, "/x")
	require.NoError(t, err)
	assert.Equal(t, "/x/a.txt", got)
}
