package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout string, status int, called []string) {
	t.Helper()

	called = nil
	run := func(a []string) int {
		called = append([]string{}, a...)
		return 7
	}
	status = -1
	cmd := newRootCmd(run, &status)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return out.String(), status, called
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			out, status, called := execute(t, arg)
			assert.Equal(t, 0, status)
			assert.Nil(t, called, "no clock should be started")
			assert.Contains(t, out, "Usage:")
			assert.Contains(t, out, "<s> <x> <y> <S>")
		})
	}
}

func TestHelp_OnlyAsFirstArgument(t *testing.T) {
	_, status, called := execute(t, "200", "--help")
	assert.Equal(t, 7, status)
	assert.Equal(t, []string{"200", "--help"}, called)
}

func TestRun_PassesPositionalArgs(t *testing.T) {
	out, status, called := execute(t, "150", "-20", "40", "DP-1")
	assert.Empty(t, out)
	assert.Equal(t, 7, status)
	assert.Equal(t, []string{"150", "-20", "40", "DP-1"}, called)
}

func TestRun_NoArgs(t *testing.T) {
	_, status, called := execute(t)
	assert.Equal(t, 7, status)
	assert.Empty(t, called)
}

func TestLongHelp_DescribesBlurSupport(t *testing.T) {
	status := 0
	cmd := newRootCmd(func([]string) int { return 0 }, &status)
	assert.Contains(t, cmd.Long, "X11")
	assert.Contains(t, cmd.Long, "Wayland sessions get no blur")
}
