package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

func TestRunShow_Trait(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, buf := newTestPrinter(output.FormatJSON)

	require.NoError(t, runShow(p, cat, "linux"))

	var got output.TraitDetail
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "linux", got.ID)
	assert.Equal(t, trait.CategoryPlatform, got.Category)
	assert.True(t, got.Current)
	assert.Equal(t, []string{"all_platforms", "unix", "linux_like"}, got.Groups)
}

func TestRunShow_Unknown(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, buf := newTestPrinter(output.FormatJSON)

	require.NoError(t, runShow(p, cat, "unknown_ci"))

	var got output.TraitDetail
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Current)
	assert.Empty(t, got.Groups)
}

func TestRunShow_Group(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, buf := newTestPrinter(output.FormatJSON)

	require.NoError(t, runShow(p, cat, "c_shells"))

	var got trait.GroupInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"csh", "tcsh"}, got.Members)
	assert.False(t, got.Canonical)
}

func TestRunShow_NotFound(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, _ := newTestPrinter(output.FormatText)

	err := runShow(p, cat, "amiga")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}
