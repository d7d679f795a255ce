package commands

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

func TestRunGroups(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, buf := newTestPrinter(output.FormatTOML)

	require.NoError(t, runGroups(p, cat, []trait.Category{trait.CategoryArchitecture}))

	var got struct {
		Groups []trait.GroupInfo `toml:"groups"`
	}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &got))
	require.NotEmpty(t, got.Groups)
	assert.Equal(t, "all_architectures", got.Groups[0].ID)
	assert.True(t, got.Groups[0].Canonical)
	for _, g := range got.Groups[1:] {
		assert.False(t, g.Canonical, g.ID)
		assert.Equal(t, trait.CategoryArchitecture, g.Category)
	}
}

func TestGroupsCommand_Text(t *testing.T) {
	out, err := execute(t, linuxBash, "groups", "ci")
	require.NoError(t, err)
	assert.Contains(t, out, "all_ci (canonical)")
	assert.Contains(t, out, "github_ci")
}
