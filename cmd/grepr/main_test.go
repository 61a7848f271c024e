package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/grepr/internal/adapters/linear"
	"go.trai.ch/grepr/internal/app"
	"go.trai.ch/grepr/internal/core/domain"
	"go.trai.ch/grepr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	resolver *mocks.MockPathResolver
	opener   *mocks.MockSourceOpener
	compiler *mocks.MockPatternCompiler
	logger   *mocks.MockLogger
	provider ComponentProvider
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &testDeps{
		resolver: mocks.NewMockPathResolver(ctrl),
		opener:   mocks.NewMockSourceOpener(ctrl),
		compiler: mocks.NewMockPatternCompiler(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	application := app.New(d.resolver, d.opener, d.compiler, linear.NewFactory())
	d.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: d.logger}, func() {}, nil
	}
	return d
}

// TestRun_Success verifies that the run function returns 0 when the search succeeds.
func TestRun_Success(t *testing.T) {
	d := newTestDeps(t)
	d.compiler.EXPECT().Compile("or", false).Return(regexp.MustCompile("or"), nil)
	d.resolver.EXPECT().Resolve([]string{"-"}, false).Return([]domain.Target{domain.Resolved("-")})
	d.opener.EXPECT().Open("-").Return(io.NopCloser(strings.NewReader("Lorem\nIpsum\n")), nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"or"}, stdout, stderr, d.provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Lorem\n", stdout.String())
	assert.Empty(t, stderr.String())
}

// TestRun_TargetFailuresExitZero verifies that per-target failures do not change the exit code.
func TestRun_TargetFailuresExitZero(t *testing.T) {
	d := newTestDeps(t)
	d.compiler.EXPECT().Compile("or", false).Return(regexp.MustCompile("or"), nil)
	d.resolver.EXPECT().Resolve([]string{"dir"}, false).
		Return([]domain.Target{domain.Unresolved("dir", domain.ErrIsDirectory)})

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"or", "dir"}, stdout, stderr, d.provider)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "dir is a directory\n", stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"or"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_InvalidPattern verifies that a pattern that does not compile is fatal.
func TestRun_InvalidPattern(t *testing.T) {
	d := newTestDeps(t)
	d.compiler.EXPECT().Compile("a(b", false).Return(nil, errors.New("invalid pattern"))
	d.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"a(b"}, new(bytes.Buffer), new(bytes.Buffer), d.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_UsageError verifies that argument errors map to exit code 2.
func TestRun_UsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing pattern", []string{}},
		{"unknown flag", []string{"--bogus", "or"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			d.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidUsage)
			})

			stderr := new(bytes.Buffer)
			exitCode := run(context.Background(), tt.args, new(bytes.Buffer), stderr, d.provider)

			assert.Equal(t, 2, exitCode)
			assert.Contains(t, stderr.String(), "grepr --help")
		})
	}
}

// TestRun_Version verifies that --version exits 0 without searching.
func TestRun_Version(t *testing.T) {
	d := newTestDeps(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stdout, new(bytes.Buffer), d.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "grepr version")
}

// TestRun_Canceled verifies that an interrupted search exits 1 with a warning.
func TestRun_Canceled(t *testing.T) {
	d := newTestDeps(t)
	d.compiler.EXPECT().Compile("or", false).Return(regexp.MustCompile("or"), nil)
	d.resolver.EXPECT().Resolve(gomock.Any(), false).Return([]domain.Target{domain.Resolved("a.txt")})
	d.logger.EXPECT().Warn("interrupted")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"or", "a.txt"}, new(bytes.Buffer), new(bytes.Buffer), d.provider)

	assert.Equal(t, 1, exitCode)
}
