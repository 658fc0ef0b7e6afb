package main

import (
	"flag"
	"testing"

	"github.com/bodgit/vgacoe"
	"github.com/bodgit/vgacoe/coe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func commandContext(t *testing.T, name string, args ...string) *cli.Context {
	t.Helper()

	app := newApp()

	var cmd *cli.Command
	for _, c := range app.Commands {
		if c.Name == name {
			cmd = c
		}
	}
	require.NotNil(t, cmd, name)

	set := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, f := range cmd.Flags {
		require.Nil(t, f.Apply(set))
	}
	require.Nil(t, set.Parse(args))

	return cli.NewContext(app, set, nil)
}

func TestConfig(t *testing.T) {
	tables := []struct {
		command string
		args    []string
		modify  func(*vgacoe.Config)
	}{
		{"image", nil, func(cfg *vgacoe.Config) {}},
		{"image", []string{"--no-pad", "--width", "100", "--height", "75", "--wrap", "16", "--preview"}, func(cfg *vgacoe.Config) {
			cfg.Pad = false
			cfg.Width, cfg.Height = 100, 75
			cfg.LineWrap = 16
			cfg.Preview = true
		}},
		{"image", []string{"--capacity", "65536", "--device", "XC7A35T", "--kbits", "1800"}, func(cfg *vgacoe.Config) {
			cfg.Capacity = 65536
			cfg.Device = coe.Device{Name: "XC7A35T", Kbits: 1800}
		}},
		{"frames", nil, func(cfg *vgacoe.Config) {
			cfg.Capacity = 0
		}},
		{"gif", nil, func(cfg *vgacoe.Config) {
			cfg.Capacity = 0
			cfg.LineWrap = 1
		}},
		{"gif", []string{"-m", "4", "--sample"}, func(cfg *vgacoe.Config) {
			cfg.Capacity = 0
			cfg.LineWrap = 1
			cfg.MaxFrames = 4
			cfg.Sample = true
		}},
		{"batch", nil, func(cfg *vgacoe.Config) {
			cfg.LineWrap = 16
		}},
		{"extract", nil, func(cfg *vgacoe.Config) {
			cfg.Capacity = 0
			cfg.MaxFrames = vgacoe.DefaultExtractFrames
		}},
	}

	for _, table := range tables {
		want := vgacoe.DefaultConfig()
		table.modify(&want)

		assert.Equal(t, want, config(commandContext(t, table.command, table.args...)), table.command, table.args)
	}
}

func TestOutputDefaults(t *testing.T) {
	assert.Equal(t, "result.coe", commandContext(t, "image").String("output"))
	assert.Equal(t, "video_frames.coe", commandContext(t, "frames").String("output"))
	assert.Equal(t, "video_frames.coe", commandContext(t, "gif").String("output"))
	assert.Equal(t, "out.coe", commandContext(t, "gif", "-o", "out.coe").String("output"))
}
