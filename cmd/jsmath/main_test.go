package main

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pgavlin/jsmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "", "eval", "(Math.hypot 3 4)", "(Math.fround 5.05)", "(Number.isNaN NaN)")
	require.NoError(t, err)
	assert.Equal(t, "5\n5.050000190734863\n#t\n", out)
}

func TestEvalCommandError(t *testing.T) {
	_, err := execute(t, "", "eval", "(Math.nope 1)")
	assert.EqualError(t, err, "evaluating (Math.nope 1): Math.nope is not bound")

	_, err = execute(t, "", "eval", "(Math.hypot 1")
	assert.Error(t, err)
}

func TestRootCommandStdin(t *testing.T) {
	out, err := execute(t, "(define x (Math.clz32 1))\n(+ x 1)\n")
	require.NoError(t, err)
	assert.Equal(t, "undefined\n32\n", out)
}

func TestRootCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.scm")
	require.NoError(t, os.WriteFile(path, []byte(`(Number.toExponential 123456 2)`), 0600))

	out, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "1.23e+5\n", out)

	_, err = execute(t, "", filepath.Join(t.TempDir(), "missing.scm"))
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "eval", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "", "verify", "--samples", "20000", "--workers", "3", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, "ok: 20000 samples\n", out)
}

func TestVerify(t *testing.T) {
	mismatches, err := verify(context.Background(), &verifyOptions{Samples: 50000, Workers: 4, Seed: 11})
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	_, err = verify(context.Background(), &verifyOptions{Samples: -1, Workers: 1})
	assert.Error(t, err)
}

func TestVerifyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := verify(ctx, &verifyOptions{Samples: 1000, Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheckSample(t *testing.T) {
	for _, v := range []float64{0, math.Copysign(0, -1), 1, -1, 0.1, 1e-45, 3.5e38, math.Inf(1), math.NaN(), 1 << 32} {
		assert.Empty(t, checkSample(v), "input %v", v)
	}
}

func TestREPLLine(t *testing.T) {
	env := jsmath.NewEnv()

	var out bytes.Buffer
	assert.False(t, replLine(env, "(define r (Math.round 2.5))", &out))
	assert.False(t, replLine(env, "r", &out))
	assert.False(t, replLine(env, "   ", &out))
	assert.Equal(t, "=> undefined\n=> 3\n", out.String())

	out.Reset()
	assert.False(t, replLine(env, "(unbound)", &out))
	assert.Contains(t, out.String(), "unbound is not bound")

	out.Reset()
	assert.False(t, replLine(env, ".help", &out))
	assert.Contains(t, out.String(), "unknown command .help")

	out.Reset()
	assert.False(t, replLine(env, ".5", &out))
	assert.Equal(t, "=> 0.5\n", out.String())

	out.Reset()
	assert.False(t, replLine(env, ".exitfoo", &out))
	assert.Contains(t, out.String(), "unknown command .exitfoo")

	out.Reset()
	assert.False(t, replLine(env, "(+ 1 2) ; trailing comment", &out))
	assert.Equal(t, "=> 3\n", out.String())

	assert.True(t, replLine(env, ".exit", &out))
	assert.True(t, replLine(env, "  .exit  ", &out))
}

func TestEvalCommandTrailingComment(t *testing.T) {
	out, err := execute(t, "", "eval", "(+ 1 2) ; note")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = execute(t, "", "eval", `"unterminated`)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
