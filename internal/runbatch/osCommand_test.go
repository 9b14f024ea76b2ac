// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/wish/internal/commandinpath"
	"github.com/matt-FFFFFF/wish/internal/report"
	"github.com/matt-FFFFFF/wish/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755))

	return p
}

func startAndWait(t *testing.T, cmd *OSCommand) {
	t.Helper()

	h, err := cmd.Start(context.Background())
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Positive(t, h.Pid)

	state, err := h.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Exited())
}

func TestNew_ResolvesBareName(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "greet", "echo hello\n")

	reg := commandinpath.NewRegistry()
	reg.Replace([]string{dir})

	cmd, err := New(context.Background(), reg, segment.Segment{Args: []string{"greet", "world"}, Redirect: "out"})
	require.NoError(t, err)
	assert.Equal(t, exe, cmd.Path)
	assert.Equal(t, []string{"greet", "world"}, cmd.Args, "argv is passed verbatim")
	assert.Equal(t, "out", cmd.Redirect)
}

func TestNew_ExplicitPathBypassesSearch(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "tool", "exit 0\n")

	reg := commandinpath.NewRegistry()
	reg.Replace(nil)

	cmd, err := New(context.Background(), reg, segment.Segment{Args: []string{exe}})
	require.NoError(t, err)
	assert.Equal(t, exe, cmd.Path)
	assert.Equal(t, exe, cmd.Args[0])
}

func TestNew_ExplicitPathDeniedToUser(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root may execute any file with an execute bit")
	}

	exe := writeScript(t, t.TempDir(), "tool", "exit 0\n")
	require.NoError(t, os.Chmod(exe, 0o607))

	cmd, err := New(context.Background(), commandinpath.NewRegistry(), segment.Segment{Args: []string{exe}})
	require.ErrorIs(t, err, ErrNotExecutable)
	assert.ErrorIs(t, err, report.ErrSpawn)
	assert.Nil(t, cmd)
}

func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(plain, []byte("data"), 0o644))

	tests := []struct {
		name    string
		dirs    []string
		args    []string
		wantErr error
	}{
		{name: "no args", dirs: []string{dir}, args: nil, wantErr: ErrNoArgs},
		{name: "empty registry", dirs: nil, args: []string{"ls"}, wantErr: commandinpath.ErrNotFound},
		{name: "explicit path not executable", dirs: []string{dir}, args: []string{plain}, wantErr: ErrNotExecutable},
		{name: "explicit path missing", dirs: []string{dir}, args: []string{"./missing"}, wantErr: ErrNotExecutable},
		{name: "explicit directory", dirs: []string{dir}, args: []string{dir + "/"}, wantErr: ErrNotExecutable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := commandinpath.NewRegistry()
			reg.Replace(tt.dirs)

			cmd, err := New(context.Background(), reg, segment.Segment{Args: tt.args})
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, report.ErrSpawn)
			assert.Nil(t, cmd)
		})
	}
}

func TestStart_RedirectCapturesStdoutAndStderr(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "both", "echo out\necho err 1>&2\n")
	target := filepath.Join(dir, "capture.txt")

	startAndWait(t, &OSCommand{Args: []string{"both"}, Path: exe, Redirect: target})

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "out\nerr\n", string(got))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&0o111, "redirect target is not executable")
}

func TestStart_RedirectTruncates(t *testing.T) {
	if _, err := os.Stat("/bin/echo"); err != nil {
		t.Skip("/bin/echo not available")
	}

	target := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(target, []byte("previous content that is longer\n"), 0o644))

	for range 2 {
		startAndWait(t, &OSCommand{Args: []string{"echo", "hi"}, Path: "/bin/echo", Redirect: target})
	}

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(got))
}

func TestStart_RedirectOpenFailure(t *testing.T) {
	cmd := &OSCommand{
		Args:     []string{"echo", "hi"},
		Path:     "/bin/echo",
		Redirect: filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"),
	}

	h, err := cmd.Start(context.Background())
	require.ErrorIs(t, err, ErrCouldNotOpenRedirect)
	assert.ErrorIs(t, err, report.ErrChildRuntime)
	assert.Nil(t, h)
}

func TestStart_ExecFailure(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus")
	require.NoError(t, os.WriteFile(bogus, []byte{0x00, 0x01, 0x02, 0x03}, 0o755))
	target := filepath.Join(dir, "out.txt")

	h, err := (&OSCommand{Args: []string{"bogus"}, Path: bogus, Redirect: target}).Start(context.Background())
	require.ErrorIs(t, err, ErrCouldNotStartProcess)
	assert.ErrorIs(t, err, report.ErrSpawn)
	assert.Nil(t, h)
}

func TestStart_NoArgs(t *testing.T) {
	h, err := (&OSCommand{Path: "/bin/echo"}).Start(context.Background())
	require.ErrorIs(t, err, ErrNoArgs)
	assert.Nil(t, h)
}

func TestStart_InheritsStreams(t *testing.T) {
	dir := t.TempDir()
	exe := writeScript(t, dir, "talk", "echo to-out\necho to-err 1>&2\n")

	out, err := os.Create(filepath.Join(dir, "stdout"))
	require.NoError(t, err)
	defer out.Close()

	errf, err := os.Create(filepath.Join(dir, "stderr"))
	require.NoError(t, err)
	defer errf.Close()

	startAndWait(t, &OSCommand{Args: []string{"talk"}, Path: exe, Stdout: out, Stderr: errf})

	gotOut, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	gotErr, err := os.ReadFile(errf.Name())
	require.NoError(t, err)

	assert.Equal(t, "to-out\n", string(gotOut))
	assert.Equal(t, "to-err\n", string(gotErr))
}
