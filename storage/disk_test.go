package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveOpenDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save("item", "photo.jpg", strings.NewReader("fake-jpeg-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "item/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	f, err := store.Open(path)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	f.Close()
	assert.Equal(t, "fake-jpeg-bytes", string(data))

	require.NoError(t, store.Delete(path))
	_, err = store.Open(path)
	assert.Error(t, err)
}

func TestDiskStore_ClientFilenameIgnored(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	// ชื่อไฟล์จาก client ใช้แค่นามสกุล — ชื่อจริงสุ่มใหม่เสมอ
	p1, err := store.Save("doc", "../../etc/passwd.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p1, "doc/"))
	assert.NotContains(t, p1, "..")

	p2, err := store.Save("doc", "report.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestDiskStore_OpenRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("../outside.txt")
	assert.Error(t, err)
}
