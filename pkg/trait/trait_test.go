package trait

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "claude_code", want: true},
		{id: "x86_64", want: true},
		{id: "i386", want: true},
		{id: "a", want: true},
		{id: "", want: false},
		{id: "_bash", want: false},
		{id: "bash_", want: false},
		{id: "double__underscore", want: false},
		{id: "CamelCase", want: false},
		{id: "with-dash", want: false},
		{id: "9lives", want: false},
		{id: "with space", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidID(tt.id); got != tt.want {
				t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestCategory_Naming(t *testing.T) {
	tests := []struct {
		category  Category
		unknown   string
		canonical string
	}{
		{CategoryArchitecture, "unknown_architecture", "all_architectures"},
		{CategoryPlatform, "unknown_platform", "all_platforms"},
		{CategoryShell, "unknown_shell", "all_shells"},
		{CategoryTerminal, "unknown_terminal", "all_terminals"},
		{CategoryCI, "unknown_ci", "all_ci"},
		{CategoryAgent, "unknown_agent", "all_agents"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.True(t, tt.category.Valid())
			assert.Equal(t, tt.unknown, tt.category.UnknownID())
			assert.Equal(t, tt.canonical, tt.category.CanonicalID())
		})
	}
	assert.Len(t, Categories(), len(tests))
	assert.False(t, Category("editor").Valid())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{in: "agent", want: CategoryAgent},
		{in: "agents", want: CategoryAgent},
		{in: "Platforms", want: CategoryPlatform},
		{in: " ci ", want: CategoryCI},
		{in: "architectures", want: CategoryArchitecture},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCategory("editors")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrait_Accessors(t *testing.T) {
	tr := New(CategoryTerminal, "kitty", "Kitty", "🐱", "https://sw.kovidgoyal.net/kitty", nil)

	assert.Equal(t, "kitty", tr.ID())
	assert.Equal(t, "Kitty", tr.Name())
	assert.Equal(t, "🐱", tr.Icon())
	assert.Equal(t, "https://sw.kovidgoyal.net/kitty", tr.URL())
	assert.Equal(t, CategoryTerminal, tr.Category())
	assert.False(t, tr.IsUnknown())
	assert.False(t, tr.Detect(MapEnv{}), "nil predicate never matches")
	assert.Equal(t, "🐱 Kitty (kitty)", tr.String())

	// Unbound traits have no registry to compare against.
	assert.False(t, tr.Info().Current)
	assert.Equal(t, map[string]any{
		"id":       "kitty",
		"name":     "Kitty",
		"icon":     "🐱",
		"url":      "https://sw.kovidgoyal.net/kitty",
		"category": "terminal",
		"current":  false,
	}, tr.Info().Map())
}

func TestEnvHelpers(t *testing.T) {
	env := MapEnv{
		Vars: map[string]string{"SET": "1", "EMPTY": ""},
		OS:   "linux",
		Arch: "arm64",
	}

	assert.Equal(t, "1", Getenv(env, "SET"))
	assert.Equal(t, "", Getenv(env, "MISSING"))
	assert.True(t, HasEnv(env, "SET"))
	assert.False(t, HasEnv(env, "EMPTY"))
	assert.True(t, AnyEnv(env, "MISSING", "SET"))
	assert.False(t, AnyEnv(env, "MISSING", "EMPTY"))
	assert.Equal(t, "linux", env.GOOS())
	assert.Equal(t, "arm64", env.GOARCH())

	t.Setenv("EXTRA_PLATFORMS_TEST_VAR", "yes")
	assert.True(t, HasEnv(OSEnv{}, "EXTRA_PLATFORMS_TEST_VAR"))
	assert.NotEmpty(t, OSEnv{}.GOOS())
	assert.NotEmpty(t, OSEnv{}.GOARCH())
}
