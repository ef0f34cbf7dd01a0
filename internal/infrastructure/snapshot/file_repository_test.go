package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveYLoadRoundtrip(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "citas", []byte(`{"citas":[]}`)))

	datos, ok, err := repo.Load(ctx, "citas")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"citas":[]}`, string(datos))
}

func TestLoadClaveInexistente(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)

	datos, ok, err := repo.Load(context.Background(), "nunca-guardada")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, datos)
}

func TestSaveSobrescribe(t *testing.T) {
	repo, err := NewFileRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "auth", []byte("v1")))
	require.NoError(t, repo.Save(ctx, "auth", []byte("v2")))

	datos, ok, err := repo.Load(ctx, "auth")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", string(datos))
}

func TestSaveNoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), "visitas", []byte("{}")))

	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, "visitas.json", entradas[0].Name())
	assert.False(t, strings.HasSuffix(entradas[0].Name(), ".tmp"))
}

func TestDeleteEsIdempotente(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "citas", []byte("{}")))
	require.NoError(t, repo.Delete(ctx, "citas"))

	_, err = os.Stat(filepath.Join(dir, "citas.json"))
	assert.True(t, os.IsNotExist(err))

	// Borrar de nuevo no falla.
	require.NoError(t, repo.Delete(ctx, "citas"))
}

func TestCreaDirectorioSiNoExiste(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "data")
	_, err := NewFileRepository(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
