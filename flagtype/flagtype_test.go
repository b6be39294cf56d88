package flagtype

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressly/argparse"
)

func TestPositionals(t *testing.T) {
	t.Parallel()

	t.Run("multiple values", func(t *testing.T) {
		t.Parallel()
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Var(Positionals(), "pos", "")
		err := fs.Parse([]string{"--pos=src:string", "--pos=point:int:2", "--pos=files:str:*"})
		require.NoError(t, err)
		got := fs.Lookup("pos").Value.(flag.Getter).Get().([]*argparse.Positional)
		require.Len(t, got, 3)
		assert.Equal(t, "src", got[0].Name())
		assert.Equal(t, argparse.String, got[0].Type())
		assert.Equal(t, argparse.Arity(1), got[0].Arity())
		assert.Equal(t, argparse.Integer, got[1].Type())
		assert.Equal(t, argparse.Arity(2), got[1].Arity())
		assert.Equal(t, argparse.Variable, got[2].Arity())
	})
	t.Run("string output", func(t *testing.T) {
		t.Parallel()
		v := Positionals()
		require.NoError(t, v.Set("a:float"))
		require.NoError(t, v.Set("b:integer:..."))
		assert.Equal(t, "a:float:1,b:int:*", v.String())
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		v := Positionals()
		for _, s := range []string{"name", "a:b:c:d", "a:complex", "a:int:x", "a:int:-3"} {
			require.Error(t, v.Set(s), s)
		}
		err := v.Set("a:int:0")
		require.True(t, errors.Is(err, argparse.ErrInvalidSpec))
		err = v.Set(":int")
		require.ErrorIs(t, err, argparse.ErrInvalidSpec)
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		v := Positionals()
		assert.Equal(t, "", v.String())
		assert.Nil(t, v.(flag.Getter).Get())
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("switch", func(t *testing.T) {
		t.Parallel()
		v := Options()
		require.NoError(t, v.Set("-v,--verbose:verbose"))
		got := v.(flag.Getter).Get().([]*argparse.Optional)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"-v", "--verbose"}, got[0].Directives())
		assert.Equal(t, argparse.Bool, got[0].Type())
		assert.Equal(t, argparse.Arity(0), got[0].Arity())
	})
	t.Run("typed", func(t *testing.T) {
		t.Parallel()
		v := Options()
		require.NoError(t, v.Set("-n:count:int"))
		require.NoError(t, v.Set("--size:size:float:2"))
		require.NoError(t, v.Set("--tag:tag:string:*"))
		got := v.(flag.Getter).Get().([]*argparse.Optional)
		require.Len(t, got, 3)
		assert.Equal(t, argparse.Arity(1), got[0].Arity())
		assert.Equal(t, argparse.Float, got[1].Type())
		assert.Equal(t, argparse.Arity(2), got[1].Arity())
		assert.Equal(t, argparse.Variable, got[2].Arity())
		assert.Equal(t, "-n:count:int:1 --size:size:float:2 --tag:tag:string:*", v.String())
	})
	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		v := Options()
		for _, s := range []string{"-v", "-a:a:b:c:d", "-a:a:decimal", "-a:a:int:many"} {
			require.Error(t, v.Set(s), s)
		}
		require.ErrorIs(t, v.Set("-n:n:int:0"), argparse.ErrInvalidSpec)
		require.ErrorIs(t, v.Set(",-x:x"), argparse.ErrInvalidSpec)
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		v := Options()
		assert.Equal(t, "", v.String())
		assert.Nil(t, v.(flag.Getter).Get())
	})
}

func TestParseType(t *testing.T) {
	t.Parallel()

	for s, want := range map[string]argparse.Type{
		"bool": argparse.Bool, "BOOLEAN": argparse.Bool,
		"int": argparse.Integer, "integer": argparse.Integer,
		"float":  argparse.Float,
		"string": argparse.String, "str": argparse.String,
	} {
		got, err := ParseType(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseType("null")
	require.Error(t, err)
}
