package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/plan"
	"vkstruct-generator/internal/registry"
)

var (
	subsetPath = filepath.Join("..", "..", "internal", "registry", "testdata", "vk_subset.xml")
	goldenPath = filepath.Join("..", "..", "internal", "gen", "testdata", "vk_subset.golden")
)

func TestRun_Stdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-registry", subsetPath}, &stdout, &stderr))

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Equal(t, string(golden), stdout.String())
}

func TestRun_OutputFileAndExport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out", "vulkan_structs.h")
	export := filepath.Join(dir, "plan.yaml")

	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-registry", subsetPath, "-out", out, "-export", export}, &stdout, &stderr))
	assert.Empty(t, stdout.String())

	golden, err := os.ReadFile(goldenPath)
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(content))

	data, err := os.ReadFile(export)
	require.NoError(t, err)

	var exported plan.ExportFile
	require.NoError(t, yaml.Unmarshal(data, &exported))
	require.NotEmpty(t, exported.Structs)
	assert.Equal(t, "VkInstanceCreateInfo", exported.Structs[0].Native)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "vkgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: \"1\"\nheader: \"#pragma once\"\n"), 0o600))

	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-registry", subsetPath, "-config", cfgPath}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "#pragma once\n\nstruct VkInstanceCreateInfo\n")
}

func TestRun_Dump(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run([]string{"-registry", subsetPath, "-dump"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "VulkanInstanceBuilder")
}

func TestRun_Errors(t *testing.T) {
	t.Run("no registry", func(t *testing.T) {
		t.Setenv(config.EnvRegistry, "")

		var stdout, stderr bytes.Buffer
		err := run(nil, &stdout, &stderr)
		require.ErrorIs(t, err, errNoRegistry)
	})

	t.Run("malformed registry writes nothing", func(t *testing.T) {
		dir := t.TempDir()
		bad := filepath.Join(dir, "vk.xml")
		out := filepath.Join(dir, "vulkan_structs.h")
		require.NoError(t, os.WriteFile(bad, []byte("<registry><types>"), 0o600))

		var stdout, stderr bytes.Buffer
		err := run([]string{"-registry", bad, "-out", out}, &stdout, &stderr)
		require.ErrorIs(t, err, registry.ErrSchemaParse)
		assert.NoFileExists(t, out)
	})

	t.Run("unknown flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Error(t, run([]string{"-nope"}, &stdout, &stderr))
	})
}

func TestRun_RegistryFromEnv(t *testing.T) {
	t.Setenv(config.EnvRegistry, subsetPath)

	var stdout, stderr bytes.Buffer

	require.NoError(t, run(nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "struct VulkanShaderModuleBuilder\n")
}
