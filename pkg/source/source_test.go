package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemSource(t *testing.T) {
	src := NewFilesystem()

	content, err := src.Read("../../go.mod")
	require.NoError(t, err)
	assert.Contains(t, string(content), "module github.com/panbanda/mood")

	_, err = src.Read("nonexistent.txt")
	assert.Error(t, err)
}

func TestFilesystemSource_TempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Dog.java")
	require.NoError(t, os.WriteFile(path, []byte("class Dog {}"), 0644))

	content, err := NewFilesystem().Read(path)
	require.NoError(t, err)
	assert.Equal(t, "class Dog {}", string(content))
}

func TestMemorySource(t *testing.T) {
	src := NewMemory(map[string]string{"Animal.java": "class Animal {}"})

	var _ ContentSource = src

	content, err := src.Read("Animal.java")
	require.NoError(t, err)
	assert.Equal(t, "class Animal {}", string(content))

	_, err = src.Read("Dog.java")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	src.Put("Dog.java", "class Dog extends Animal {}")
	content, err = src.Read("Dog.java")
	require.NoError(t, err)
	assert.Equal(t, "class Dog extends Animal {}", string(content))
}
