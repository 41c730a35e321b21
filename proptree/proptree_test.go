// SPDX-License-Identifier: MIT
package proptree

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fisherprime/hierarchy/v4/childmap"
)

func parse(t *testing.T, src string) *childmap.ChildMap[string] {
	t.Helper()

	m, err := childmap.ParseString(context.Background(), src)
	require.NoError(t, err)

	return m
}

func TestFromMap(t *testing.T) {
	obj := map[string]any{
		"server": map[string]any{
			"port": 8080,
			"tls":  map[string]any{"cert": "a.pem", "key": "a.key"},
		},
		"debug": true,
		"log":   map[string]any{},
	}

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "every property",
			want: "debug\nlog\nserver:port,tls\ntls:cert,key\n",
		},
		{
			name: "objects only",
			opts: []Option{WithInclude(func(_ string, value any) bool {
				_, ok := value.(map[string]any)
				return ok
			})},
			want: "log\nserver:tls\n",
		},
		{
			name: "path ids",
			opts: []Option{WithPathIDs(".")},
			want: "debug\nlog\nserver:server.port,server.tls\n" +
				"server.tls:server.tls.cert,server.tls.key\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMap(obj, tt.opts...)
			if diff := cmp.Diff(parse(t, tt.want), got); diff != "" {
				t.Errorf("FromMap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromMap_SortedKeys(t *testing.T) {
	got := FromMap(map[string]any{"b": 1, "c": 2, "a": 3})
	assert.Equal(t, []string{"a", "b", "c"}, got.Keys())
	assert.Equal(t, []string{"a", "b", "c"}, got.RootIDs())
}

func TestFromYAML(t *testing.T) {
	src := `
zeta:
  beta: 1
  alpha:
    leaf: true
defaults: &defaults
  retries: 3
service:
  <<: *defaults
  name: api
list:
  - a
  - b
`

	got, err := FromYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "defaults", "service", "list"}, got.RootIDs(), "document order is kept")

	children, _ := got.Children("zeta")
	assert.Equal(t, []string{"beta", "alpha"}, children)
	children, _ = got.Children("alpha")
	assert.Equal(t, []string{"leaf"}, children)
	children, _ = got.Children("service")
	assert.Equal(t, []string{"retries", "name"}, children, "merged keys are inlined")
	children, ok := got.Children("list")
	require.True(t, ok, "childless roots are recorded")
	assert.Empty(t, children, "sequences are leaves")
	assert.False(t, got.Has("beta"), "nested leaves are children only")
}

func TestFromYAML_Include(t *testing.T) {
	src := "a:\n  secret: x\n  b:\n    c: 1\n"

	got, err := FromYAML(strings.NewReader(src), WithInclude(func(key string, _ any) bool { return key != "secret" }))
	require.NoError(t, err)

	if diff := cmp.Diff(parse(t, "a:b\nb:c\n"), got); diff != "" {
		t.Errorf("FromYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := FromYAML(strings.NewReader("- a\n- b\n"))
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = FromYAML(strings.NewReader("a: [\n"))
	assert.Error(t, err)

	got, err := FromYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestFromTOML(t *testing.T) {
	src := `
title = "example"

[server]
port = 8080

[server.tls]
cert = "a.pem"

[[jobs]]
name = "nightly"

[database]
url = "postgres://"
`

	got, err := FromTOML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "server", "jobs", "database"}, got.RootIDs(), "document order is kept")

	children, _ := got.Children("server")
	assert.Equal(t, []string{"port", "tls"}, children)
	children, _ = got.Children("tls")
	assert.Equal(t, []string{"cert"}, children)
	children, ok := got.Children("jobs")
	require.True(t, ok)
	assert.Empty(t, children, "arrays of tables are leaves")
	assert.False(t, got.Has("name"))
}

func TestFromTOML_Include(t *testing.T) {
	src := "[a]\nx = 1\n[a.b]\ny = 2\n[c]\nz = 3\n"

	got, err := FromTOML(strings.NewReader(src), WithInclude(func(key string, _ any) bool { return key != "b" }))
	require.NoError(t, err)

	if diff := cmp.Diff(parse(t, "a:x\nc:z\n"), got); diff != "" {
		t.Errorf("FromTOML() mismatch (-want +got):\n%s", diff)
	}

	_, err = FromTOML(strings.NewReader("a = \n"))
	assert.Error(t, err)
}
