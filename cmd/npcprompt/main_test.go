package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrompts = `single_npc_prompt: "You are {name}. {trust}. It is {time} {ampm} in {location}."
multi_npc_prompt: "Talking: {names_w_player}. {relationship_summary}"
`

const testNPC = `name: Lydia
bio: A housecarl.
relationship:
  name: my Thane
  description: Lydia serves the player.
  trust: 0.9
`

const testNPC2 = `name: Faendal
bio: A wood elf.
relationship:
  name: stranger
  description: Faendal does not know the player.
  trust: 0
`

func setupEnv(t *testing.T) (gameDir string, npcFiles []string) {
	t.Helper()
	dir := t.TempDir()
	gameDir = filepath.Join(dir, "game")
	require.NoError(t, os.Mkdir(gameDir, 0o755))

	promptsPath := filepath.Join(dir, "prompts.yaml")
	require.NoError(t, os.WriteFile(promptsPath, []byte(testPrompts), 0o644))

	for i, content := range []string{testNPC, testNPC2} {
		p := filepath.Join(dir, []string{"lydia.yaml", "faendal.yaml"}[i])
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		npcFiles = append(npcFiles, p)
	}

	files := map[string]string{
		"_mantella_in_game_time":     "14.2",
		"_mantella_current_location": "Whiterun",
		"_mantella_player_name":      "Dovahkiin",
	}
	for k, v := range files {
		require.NoError(t, os.WriteFile(filepath.Join(gameDir, k+".txt"), []byte(v), 0o644))
	}

	t.Setenv("BRIDGE", "file")
	t.Setenv("GAME_STATE_DIR", gameDir)
	t.Setenv("PROMPTS_FILE", promptsPath)
	t.Setenv("NPC_LANGUAGE", "en")
	t.Setenv("LOG_LEVEL", "error")
	return gameDir, npcFiles
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender_SingleNPC(t *testing.T) {
	_, npcs := setupEnv(t)

	out, err := run(t, "", "render", npcs[0])
	require.NoError(t, err)
	assert.Contains(t, out, "You are Lydia. a trusted friend. It is 2 PM in Whiterun.")
}

func TestRender_MultiNPC(t *testing.T) {
	_, npcs := setupEnv(t)

	out, err := run(t, "", "render", "--vars", npcs[0], npcs[1])
	require.NoError(t, err)
	assert.Contains(t, out, "Talking: Lydia, Faendal, Dovahkiin. Lydia serves the player.\n\nFaendal does not know the player.")
	assert.Contains(t, out, "time_group: in the afternoon")
}

func TestRender_MissingNPCFile(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "render", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestDispatch_WritesToGame(t *testing.T) {
	gameDir, _ := setupEnv(t)

	out, err := run(t, "", "dispatch", "Offended: How dare you!")
	require.NoError(t, err)
	assert.Equal(t, "Offended\n", out)

	data, err := os.ReadFile(filepath.Join(gameDir, "_mantella_aggro.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}

func TestDispatch_FromStdin(t *testing.T) {
	gameDir, _ := setupEnv(t)

	out, err := run(t, "Nice weather today.\n", "dispatch")
	require.NoError(t, err)
	assert.Equal(t, "No behaviors triggered.\n", out)

	_, err = os.Stat(filepath.Join(gameDir, "_mantella_aggro.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidate(t *testing.T) {
	_, npcs := setupEnv(t)

	out, err := run(t, "", "validate", npcs[0])
	require.NoError(t, err)
	assert.Contains(t, out, "is valid!")
}

func TestValidate_UnknownVariable(t *testing.T) {
	setupEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("single_npc_prompt: \"{name}\"\nmulti_npc_prompt: \"{name}\"\n"), 0o644))

	_, err := run(t, "", "validate", "--prompts", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multi_npc_prompt")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestValidate_ShippedPrompts(t *testing.T) {
	root := filepath.Join("..", "..")

	out, err := run(t, "", "validate",
		"--prompts", filepath.Join(root, "prompts.yaml"),
		filepath.Join(root, "data", "npcs", "lydia.yaml"),
		filepath.Join(root, "data", "npcs", "faendal.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid!")
}
