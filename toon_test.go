package toon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture-driven round trip tests, in the spirit of the teacher's table
// tests: each case is valid TOON that should decode to a Go value and
// re-encode back to the identical source text.
func TestRoundTripFixtures(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"scalar string", "hello"},
		{"simple mapping", "name: alice\nage: 30"},
		{"nested mapping", "server:\n  host: localhost\n  port: 8080"},
		{"inline array", "tags[3]: a,b,c"},
		{"tabular array", "users[2]{id,name}:\n  1,alice\n  2,bob"},
		{"list array", "items[2]:\n  - id: 1\n  - id: 2\n    extra: x"},
		{"root array", "[2]: a,b"},
		{"quoted key with dot", "\"a.b\": 1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := Decode(c.src, nil)
			require.NoError(t, err)
			got, err := Encode(v, nil)
			require.NoError(t, err)
			assert.Equal(t, c.src, got)
		})
	}
}

func TestDecodeErrorCases(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
	}{
		{"declared count too high", "items[2]: a", ErrRange},
		{"extra tabular row", "users[1]{id}:\n  1\n  2", ErrValidation},
		{"bad delimiter in header", "items[1]{a|b}: x", ErrValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode(c.src, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, KindError(c.kind))
		})
	}
}

func TestEncodeStructEndToEnd(t *testing.T) {
	type addr struct {
		City string
		Zip  string
	}
	type user struct {
		Name    string
		Age     int
		Address addr
	}
	got, err := Encode(user{Name: "alice", Age: 30, Address: addr{City: "nyc", Zip: "10001"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Name: alice\nAge: 30\nAddress:\n  City: nyc\n  Zip: 10001", got)
}

func TestDecodeWithExpandPathsOption(t *testing.T) {
	opts := DecodeOptions{Indent: 2, Strict: true, ExpandPaths: ExpandSafe}
	v, err := Decode("user.name: alice\nuser.age: 30", &opts)
	require.NoError(t, err)
	obj := v.(*Object)
	user, ok := obj.Get("user")
	require.True(t, ok)
	userObj := user.(*Object)
	assert.Equal(t, []string{"name", "age"}, userObj.Keys())
}
