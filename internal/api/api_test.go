// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/comet-tui/internal/commands"
	"github.com/jeranaias/comet-tui/internal/config"
	"github.com/jeranaias/comet-tui/internal/format"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.API.Key = "TEST-KEY"
	cfg.API.BaseURL = srv.URL
	return NewClient(cfg), srv
}

// =============================================================================
// REQUEST BUILDING
// =============================================================================

func TestBuildRequestMissingRequired(t *testing.T) {
	reg := commands.NewRegistry()
	desc := reg.Lookup("getScript")
	require.NotNil(t, desc)

	_, err := BuildRequest(desc, map[string]string{})
	var missing *MissingParamError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "id", missing.Param)
	assert.Equal(t, "getScript", missing.Command)
}

func TestBuildRequestIntCoercion(t *testing.T) {
	reg := commands.NewRegistry()
	desc := reg.Lookup("getForumPosts")
	require.NotNil(t, desc)

	req, err := BuildRequest(desc, map[string]string{"count": "10"})
	require.NoError(t, err)
	assert.Equal(t, "10", req.Query.Get("count"))

	_, err = BuildRequest(desc, map[string]string{"count": "ten"})
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "count", typeErr.Param)
}

func TestBuildRequestBoolCoercion(t *testing.T) {
	reg := commands.NewRegistry()
	desc := reg.Lookup("getScript")
	require.NotNil(t, desc)

	tests := []struct {
		raw  string
		want string
	}{
		{"true", "true"},
		{"TRUE", "true"},
		{"1", "true"},
		{"yes", "true"},
		{"Yes", "true"},
		{"false", "false"},
		{"0", "false"},
		{"anything", "false"},
	}
	for _, tt := range tests {
		req, err := BuildRequest(desc, map[string]string{"id": "1", "source": tt.raw})
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, req.Query.Get("source"), "raw %q", tt.raw)
	}
}

func TestBuildRequestBeautifyOnlyWhenTrue(t *testing.T) {
	reg := commands.NewRegistry()
	desc := reg.Lookup("getForumPosts")
	require.NotNil(t, desc)

	req, err := BuildRequest(desc, map[string]string{"count": "5", "beautify": "true"})
	require.NoError(t, err)
	assert.Equal(t, "true", req.Query.Get("beautify"))

	req, err = BuildRequest(desc, map[string]string{"count": "5", "beautify": "false"})
	require.NoError(t, err)
	assert.False(t, req.Query.Has("beautify"))
}

func TestBuildRequestPostRouting(t *testing.T) {
	reg := commands.NewRegistry()
	desc := reg.Lookup("setConfiguration")
	require.NotNil(t, desc)

	req, err := BuildRequest(desc, map[string]string{"value": `{"a":1}`})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, req.Form.Get("value"))
	assert.False(t, req.Query.Has("value"))
}

func TestBuildRequestListParam(t *testing.T) {
	reg := commands.NewRegistry()
	desc := reg.Lookup("updateScript")
	require.NotNil(t, desc)

	args := map[string]string{
		"script":     "s",
		"content":    "c",
		"notes":      "n",
		"categories": "[1, 2, 3]",
	}
	req, err := BuildRequest(desc, args)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, req.Form["categories"])

	args["categories"] = "not a list"
	_, err = BuildRequest(desc, args)
	var listErr *ListError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, "categories", listErr.Param)
}

// =============================================================================
// LIST LITERAL PARSER
// =============================================================================

func TestParseListLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		ok    bool
	}{
		{"ints", "[1,2,3]", []string{"1", "2", "3"}, true},
		{"negative", "[-5, 10]", []string{"-5", "10"}, true},
		{"double quoted", `["a", "b c"]`, []string{"a", "b c"}, true},
		{"single quoted", `['x', 'y']`, []string{"x", "y"}, true},
		{"mixed", `[1, "two", true]`, []string{"1", "two", "true"}, true},
		{"nested", "[1, [2, 3]]", []string{"1", "[2,3]"}, true},
		{"empty", "[]", nil, true},
		{"escaped quote", `["a\"b"]`, []string{`a"b`}, true},
		{"spaces", "[ 1 , 2 ]", []string{"1", "2"}, true},
		{"no brackets", "1,2,3", nil, false},
		{"unterminated", "[1,2", nil, false},
		{"bare word", "[foo]", nil, false},
		{"call syntax", "[len('x')]", nil, false},
		{"trailing data", "[1] extra", nil, false},
		{"unterminated string", `["abc]`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseListLiteral(tt.input)
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// =============================================================================
// DISPATCH
// =============================================================================

func TestDispatchGET(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"posts": [1, 2]}`))
	})

	reg := commands.NewRegistry()
	resp, err := client.Dispatch(context.Background(), reg.Lookup("getForumPosts"), map[string]string{"count": "2"})
	require.NoError(t, err)

	assert.Equal(t, []string{"getForumPosts"}, gotQuery["cmd"])
	assert.Equal(t, []string{"TEST-KEY"}, gotQuery["key"])
	assert.Equal(t, []string{"2"}, gotQuery["count"])

	require.NotNil(t, resp.JSON)
	assert.Equal(t, format.KindObject, resp.JSON.Kind)
	assert.Empty(t, resp.Raw)
	assert.NotEmpty(t, resp.RequestID)
}

func TestDispatchPOSTForm(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cfg-data", r.PostFormValue("value"))
		assert.Equal(t, "setConfiguration", r.URL.Query().Get("cmd"))
		w.Write([]byte(`"ok"`))
	})

	reg := commands.NewRegistry()
	resp, err := client.Dispatch(context.Background(), reg.Lookup("setConfiguration"), map[string]string{"value": "cfg-data"})
	require.NoError(t, err)
	require.NotNil(t, resp.JSON)
	assert.Equal(t, "ok", resp.JSON.Str)
}

func TestDispatchRawResponse(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not JSON"))
	})

	reg := commands.NewRegistry()
	resp, err := client.Dispatch(context.Background(), reg.Lookup("getMember"), nil)
	require.NoError(t, err)
	assert.Nil(t, resp.JSON)
	assert.Equal(t, "plain text, not JSON", resp.Raw)
}

func TestDispatchHTTPError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid license key", http.StatusUnauthorized)
	})

	reg := commands.NewRegistry()
	_, err := client.Dispatch(context.Background(), reg.Lookup("getMember"), nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "API request failed")
}

func TestDispatchNotConfigured(t *testing.T) {
	cfg := config.Default()
	client := NewClient(cfg)

	reg := commands.NewRegistry()
	_, err := client.Dispatch(context.Background(), reg.Lookup("getMember"), nil)
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestDispatchCoercionErrorBeforeNetwork(t *testing.T) {
	called := false
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	reg := commands.NewRegistry()
	_, err := client.Dispatch(context.Background(), reg.Lookup("getForumPosts"), map[string]string{"count": "ten"})
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.False(t, called, "no request should be made when coercion fails")
}
