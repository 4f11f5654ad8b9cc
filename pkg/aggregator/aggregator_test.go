package aggregator

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/gig/pkg/backend"
	"github.com/arthur-debert/gig/pkg/errors"
	"github.com/arthur-debert/gig/pkg/filesystem"
	"github.com/arthur-debert/gig/pkg/paths"
	"github.com/arthur-debert/gig/pkg/types"
)

// stubBackend returns canned results and records the calls it received
type stubBackend struct {
	list     types.QualifiedString
	generate types.QualifiedString
	err      error
	calls    []string
}

func (s *stubBackend) List(ctx context.Context) (types.QualifiedString, error) {
	s.calls = append(s.calls, "list")
	return s.list, s.err
}

func (s *stubBackend) Generate(ctx context.Context, names []string) (types.QualifiedString, error) {
	s.calls = append(s.calls, "generate:"+strings.Join(names, ","))
	return s.generate, s.err
}

func (s *stubBackend) GenerateWithCheck(ctx context.Context, names []string) (types.QualifiedString, error) {
	s.calls = append(s.calls, "check:"+strings.Join(names, ","))
	return s.generate, s.err
}

// staticGetter serves fixed bodies by path
type staticGetter map[string]string

func (g staticGetter) Get(ctx context.Context, path string) (string, error) {
	body, ok := g[path]
	if !ok {
		return "", errors.New(errors.ExitHTTPClient, "An error occurred during the API call: 404 "+path)
	}
	return body, nil
}

func local(value string) types.QualifiedString {
	return types.NewQualifiedString(value, types.OriginLocal)
}

func remote(value string) types.QualifiedString {
	return types.NewQualifiedString(value, types.OriginRemote)
}

func TestZeroBackends(t *testing.T) {
	ctx := context.Background()
	agg := New()

	for name, op := range map[string]func() (types.QualifiedString, error){
		"list":     func() (types.QualifiedString, error) { return agg.List(ctx) },
		"generate": func() (types.QualifiedString, error) { return agg.Generate(ctx, []string{"rust"}) },
		"check":    func() (types.QualifiedString, error) { return agg.GenerateWithCheck(ctx, []string{"rust"}) },
	} {
		t.Run(name, func(t *testing.T) {
			got, err := op()
			require.NoError(t, err)
			assert.Equal(t, types.NewQualifiedString("", types.OriginMixed), got)
		})
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("single_backend_is_tagged_mixed", func(t *testing.T) {
		got, err := New(&stubBackend{list: local("b\na")}).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "a\nb", got.Value)
		assert.Equal(t, types.OriginMixed, got.Origin)
	})

	t.Run("dedup_sort_and_marker", func(t *testing.T) {
		first := &stubBackend{list: local("python\nrust")}
		second := &stubBackend{list: remote("rust\ngo\n")}
		third := &stubBackend{list: remote("go\nzig\npython")}

		got, err := New(first, second, third).List(ctx)
		require.NoError(t, err)

		want := []string{"*go", "*zig", "python", "rust"}
		if diff := cmp.Diff(want, strings.Split(got.Value, "\n")); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("names_repeated_within_first_backend_appear_once", func(t *testing.T) {
		got, err := New(&stubBackend{list: remote("rust\nrust\n\n")}).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "rust", got.Value)
	})

	t.Run("failure_is_reported_even_when_others_succeed", func(t *testing.T) {
		failure := errors.New(errors.ExitHTTPClient, "remote down").WithStyled("styled")
		ok := &stubBackend{list: local("rust")}
		bad := &stubBackend{err: failure}

		_, err := New(ok, bad).List(ctx)
		require.Error(t, err)
		assert.Same(t, failure, err)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("concatenates_in_backend_order", func(t *testing.T) {
		first := &stubBackend{generate: local("LOCAL")}
		second := &stubBackend{generate: remote("REMOTE")}

		got, err := New(first, second).Generate(ctx, []string{"rust"})
		require.NoError(t, err)
		assert.Equal(t, types.NewQualifiedString("LOCAL\nREMOTE", types.OriginMixed), got)
		assert.Equal(t, []string{"generate:rust"}, first.calls)
		assert.Equal(t, []string{"generate:rust"}, second.calls)
	})

	t.Run("empty_contributions_are_skipped", func(t *testing.T) {
		got, err := New(
			&stubBackend{generate: local("")},
			&stubBackend{generate: remote("REMOTE")},
		).Generate(ctx, []string{"rust"})
		require.NoError(t, err)
		assert.Equal(t, "REMOTE", got.Value)
	})

	t.Run("empty_names", func(t *testing.T) {
		got, err := New(
			backend.NewLocalWithFS(filesystem.NewMemory(), "/nowhere", "txt"),
			backend.NewRemote(staticGetter{}, "", ""),
		).Generate(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, types.NewQualifiedString("", types.OriginMixed), got)
	})

	t.Run("check_uses_checked_variant", func(t *testing.T) {
		b := &stubBackend{generate: local("X")}
		_, err := New(b).GenerateWithCheck(ctx, []string{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, []string{"check:a,b"}, b.calls)
	})
}

func TestCombinedFailures(t *testing.T) {
	ctx := context.Background()
	first := &stubBackend{err: errors.New(errors.ExitGeneric, "error1")}
	middle := &stubBackend{generate: local("ok")}
	last := &stubBackend{err: errors.New(errors.ExitGeneric, "error2")}

	_, err := New(first, middle, last).Generate(ctx, []string{"rust"})
	require.Error(t, err)

	exit := errors.AsProgramExit(err)
	assert.Equal(t, "error1\nerror2", exit.Message)
	assert.Equal(t, 4, exit.ExitStatus)
	assert.Equal(t, errors.KindError, exit.Kind)
	assert.Nil(t, exit.StyledMessage)

	// Every backend ran despite the first failure
	assert.Len(t, middle.calls, 1)
	assert.Len(t, last.calls, 1)
}

func TestForeignErrorsBecomeGeneric(t *testing.T) {
	_, err := New(&stubBackend{err: assert.AnError}).List(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ExitGeneric, errors.ExitStatusOf(err))
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  types.Request
		want string
	}{
		{"list", types.Request{List: true, Names: []string{"ignored"}}, "list"},
		{"check", types.Request{Check: true, Names: []string{"rust"}}, "check:rust"},
		{"generate", types.Request{Names: []string{"rust"}}, "generate:rust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &stubBackend{}
			_, err := New(b).Execute(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, b.calls)
		})
	}
}

func TestLocalAndRemoteListing(t *testing.T) {
	t.Setenv(paths.EnvTemplatesDir, "")
	memFs := filesystem.NewMemory()
	require.NoError(t, memFs.MkdirAll("/templates", 0755))
	for _, name := range []string{"rust", "python"} {
		require.NoError(t, afero.WriteFile(memFs, filepath.Join("/templates", name+".txt"), []byte(name), 0644))
	}

	agg := New(
		backend.NewLocalWithFS(memFs, "/templates", "txt"),
		backend.NewRemote(staticGetter{"/list": "rust\ngo"}, "/gen", "/list"),
	)

	got, err := agg.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.NewQualifiedString("*go\npython\nrust", types.OriginMixed), got)
}

func TestLocalAndRemoteGenerateFailures(t *testing.T) {
	t.Setenv(paths.EnvTemplatesDir, "")

	agg := New(
		backend.NewLocalWithFS(filesystem.NewMemory(), "/nowhere", "txt"),
		backend.NewRemote(staticGetter{}, "/gen", "/list"),
	)

	_, err := agg.Generate(context.Background(), []string{"rust"})
	require.Error(t, err)

	exit := errors.AsProgramExit(err)
	lines := strings.Split(exit.Message, "\n")
	assert.True(t, strings.HasPrefix(lines[0], backend.MsgLocalGenerateFailed))
	assert.Contains(t, exit.Message, "404 /gen/rust")
	assert.Equal(t, errors.ExitGeneric+errors.ExitHTTPClient, exit.ExitStatus)
}
