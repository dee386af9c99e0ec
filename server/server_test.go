// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, opts ...Option) (*Server, http.Handler) {
	t.Helper()
	s := New(store.NewMemory(), opts...)

	return s, s.Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", core.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("x: %w", core.ErrNotFound), http.StatusNotFound},
		{store.NotFound("abc"), http.StatusNotFound},
		{fmt.Errorf("%w: abc", ErrSessionNotFound), http.StatusNotFound},
		{core.ErrOverflow, http.StatusConflict},
		{core.ErrUnderflow, http.StatusConflict},
		{core.ErrEmpty, http.StatusConflict},
		{core.ErrFull, http.StatusConflict},
		{core.ErrSlotOccupied, http.StatusConflict},
		{core.ErrAlreadyEmpty, http.StatusConflict},
		{core.ErrOutOfRange, http.StatusConflict},
		{core.ErrRunInProgress, http.StatusConflict},
		{core.ErrRunFailed, http.StatusInternalServerError},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), "%v", tc.err)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	do(t, h, http.MethodPost, "/v1/runs", RunRequest{Engine: "factorial", Params: map[string]any{"n": 3}})
	rec = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stepwise_runs_total{engine="factorial",state="completed"} 1`)
	assert.Contains(t, rec.Body.String(), `stepwise_steps_total{engine="factorial",kind="recurse_call"} 3`)
}

func TestRuns_SearchLifecycle(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/v1/runs", RunRequest{
		Engine: "search",
		Params: map[string]any{"data": []int{15, 3, 8, 12}, "target": 8},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tr := decode[core.Trace](t, rec)
	assert.Equal(t, "search", tr.Engine)
	assert.Equal(t, core.Completed, tr.State)
	assert.Equal(t, 3, tr.Count(core.Compare))
	assert.Equal(t, 1, tr.Count(core.Found))
	assert.EqualValues(t, 3, tr.Summary["steps"])
	assert.Equal(t, true, tr.Summary["found"])

	rec = do(t, h, http.MethodGet, "/v1/runs/"+tr.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[core.Trace](t, rec).Events, 4)

	rec = do(t, h, http.MethodGet, "/v1/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]core.Trace](t, rec)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Events, "listing omits events")

	rec = do(t, h, http.MethodGet, "/v1/runs/"+tr.ID+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "# search run"))

	rec = do(t, h, http.MethodDelete, "/v1/runs/"+tr.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/v1/runs/"+tr.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decode[ErrorBody](t, rec).Kind)
}

func TestRuns_SortWithSeededDataset(t *testing.T) {
	_, h := newTestServer(t)
	req := RunRequest{Engine: "sort", Params: map[string]any{
		"algorithm": "merge", "dataset": "reversed", "size": 5, "seed": 7,
	}}

	rec := do(t, h, http.MethodPost, "/v1/runs", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tr := decode[core.Trace](t, rec)
	assert.Equal(t, "merge", tr.Params["algorithm"])
	assert.EqualValues(t, 7, tr.Params["seed"])
	assert.Equal(t, "O(n log n)", tr.Summary["complexity"])

	sorted, ok := tr.Summary["sorted"].([]any)
	require.True(t, ok)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].(float64), sorted[i].(float64))
	}
	assert.Equal(t, core.Highlight, tr.Events[len(tr.Events)-1].Kind)
}

func TestRuns_Fibonacci(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/v1/runs", RunRequest{Engine: "fibonacci", Params: map[string]any{"n": "10"}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tr := decode[core.Trace](t, rec)
	assert.EqualValues(t, 55, tr.Summary["value"])
	assert.EqualValues(t, 177, tr.Summary["naive_calculations"])
	assert.EqualValues(t, 11, tr.Summary["tabulated_calculations"])
	assert.EqualValues(t, 80, tr.Summary["work_saved"])

	rec = do(t, h, http.MethodPost, "/v1/runs", RunRequest{Engine: "fibonacci", Params: map[string]any{"n": 6, "strategy": "dp"}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tr = decode[core.Trace](t, rec)
	assert.Equal(t, "tabulation", tr.Params["strategy"])
	assert.Equal(t, 5, tr.Count(core.DPCompute))
}

func TestRuns_InvalidInput(t *testing.T) {
	s, h := newTestServer(t)
	cases := map[string]RunRequest{
		"unknown engine":  {Engine: "bogo"},
		"factorial range": {Engine: "factorial", Params: map[string]any{"n": 11}},
		"fibonacci range": {Engine: "fibonacci", Params: map[string]any{"n": 0}},
		"missing target":  {Engine: "search", Params: map[string]any{"data": []int{1}}},
		"unknown param":   {Engine: "factorial", Params: map[string]any{"n": 3, "m": 4}},
		"bad type":        {Engine: "factorial", Params: map[string]any{"n": "five"}},
		"unknown algo":    {Engine: "sort", Params: map[string]any{"algorithm": "bogo", "data": []int{2, 1}}},
		"unknown dataset": {Engine: "sort", Params: map[string]any{"dataset": "spiral", "seed": 1}},
	}
	for name, req := range cases {
		rec := do(t, h, http.MethodPost, "/v1/runs", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Equal(t, "InvalidInput", decode[ErrorBody](t, rec).Kind, name)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/runs", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	all, err := s.store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all, "rejected runs are not stored")
}

func TestRuns_InputTooLong(t *testing.T) {
	s, h := newTestServer(t)
	long := make([]int, config.DefaultMaxInput+1)
	cases := map[string]RunRequest{
		"generated": {Engine: "sort", Params: map[string]any{"dataset": "reversed", "size": 400}},
		"explicit":  {Engine: "sort", Params: map[string]any{"data": long}},
		"search":    {Engine: "search", Params: map[string]any{"data": long, "target": 1}},
	}
	for name, req := range cases {
		rec := do(t, h, http.MethodPost, "/v1/runs", req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Equal(t, "InvalidInput", decode[ErrorBody](t, rec).Kind, name)
	}
	all, err := s.store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, h = newTestServer(t, WithMaxInput(5))
	sized := func(n int) RunRequest {
		return RunRequest{Engine: "sort", Params: map[string]any{"dataset": "reversed", "size": n}}
	}
	assert.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/runs", sized(5)).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/v1/runs", sized(6)).Code)

	assert.Panics(t, func() { WithMaxInput(0) })
}

func TestSessions_Isolation(t *testing.T) {
	_, h := newTestServer(t)

	a := decode[SessionView](t, do(t, h, http.MethodPost, "/v1/sessions", nil))
	b := decode[SessionView](t, do(t, h, http.MethodPost, "/v1/sessions", nil))
	require.NotEqual(t, a.ID, b.ID)

	rec := do(t, h, http.MethodPost, "/v1/sessions/"+a.ID+"/ops", OpRequest{Container: "stack", Op: "push", Item: "oxygen"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[OpResponse](t, rec)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, core.Push, resp.Events[0].Kind)
	assert.Equal(t, []string{"oxygen"}, resp.Session.Stack)

	rec = do(t, h, http.MethodGet, "/v1/sessions/"+b.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[SessionView](t, rec).Stack)

	rec = do(t, h, http.MethodPost, "/v1/sessions/"+b.ID+"/ops", OpRequest{Container: "stack", Op: "pop"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	resp = decode[OpResponse](t, rec)
	assert.Equal(t, "Underflow", resp.Kind)
}

func TestSessions_Operations(t *testing.T) {
	_, h := newTestServer(t, WithContainers(config.ContainersConfig{
		ArrayCapacity: 2, StackDepth: 1, QueueCapacity: 2, HashBuckets: 10,
	}))
	id := decode[SessionView](t, do(t, h, http.MethodPost, "/v1/sessions", nil)).ID
	path := "/v1/sessions/" + id + "/ops"
	idx := func(i int) *int { return &i }

	steps := []struct {
		req  OpRequest
		code int
		kind string
	}{
		{OpRequest{Container: "array", Op: "add", Item: "beaker"}, http.StatusOK, ""},
		{OpRequest{Container: "array", Op: "add", Item: "flask", Index: idx(0)}, http.StatusConflict, "SlotOccupied"},
		{OpRequest{Container: "array", Op: "add", Item: "flask"}, http.StatusOK, ""},
		{OpRequest{Container: "array", Op: "add", Item: "pipette"}, http.StatusConflict, "Full"},
		{OpRequest{Container: "array", Op: "search", Item: "flask"}, http.StatusOK, ""},
		{OpRequest{Container: "array", Op: "remove", Index: idx(5)}, http.StatusConflict, "OutOfRange"},
		{OpRequest{Container: "array", Op: "remove"}, http.StatusBadRequest, "InvalidInput"},
		{OpRequest{Container: "stack", Op: "push", Item: "a"}, http.StatusOK, ""},
		{OpRequest{Container: "stack", Op: "push", Item: "b"}, http.StatusConflict, "Overflow"},
		{OpRequest{Container: "queue", Op: "peek"}, http.StatusConflict, "Empty"},
		{OpRequest{Container: "queue", Op: "enqueue", Item: "x"}, http.StatusOK, ""},
		{OpRequest{Container: "queue", Op: "dequeue"}, http.StatusOK, ""},
		{OpRequest{Container: "hash", Op: "insert", Key: "H", Value: "Hydrogen"}, http.StatusOK, ""},
		{OpRequest{Container: "hash", Op: "delete", Key: "He"}, http.StatusNotFound, "NotFound"},
		{OpRequest{Container: "hash", Op: "juggle"}, http.StatusBadRequest, "InvalidInput"},
	}
	for i, st := range steps {
		rec := do(t, h, http.MethodPost, path, st.req)
		assert.Equal(t, st.code, rec.Code, "step %d: %s", i, rec.Body.String())
		assert.Equal(t, st.kind, decode[OpResponse](t, rec).Kind, "step %d", i)
	}

	view := decode[SessionView](t, do(t, h, http.MethodGet, "/v1/sessions/"+id, nil))
	assert.Equal(t, []string{"beaker", "flask"}, view.Array)
	assert.Empty(t, view.Queue.Items)
	assert.Zero(t, view.Queue.Front, "window resets once drained")
	assert.Zero(t, view.Queue.Rear)
	require.Len(t, view.Hash, 10)
	assert.Equal(t, "H", view.Hash[2].Entries[0].Key)
}

func TestSessions_HashSearchBucketTrimsKey(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[SessionView](t, do(t, h, http.MethodPost, "/v1/sessions", nil)).ID
	path := "/v1/sessions/" + id + "/ops"

	ins := decode[OpResponse](t, do(t, h, http.MethodPost, path, OpRequest{Container: "hash", Op: "insert", Key: " A", Value: "Argon"}))
	got := decode[OpResponse](t, do(t, h, http.MethodPost, path, OpRequest{Container: "hash", Op: "search", Key: " A"}))

	require.Len(t, got.Events, 1)
	assert.Equal(t, core.Found, got.Events[0].Kind)
	assert.Equal(t, []int{5}, got.Events[0].Indices)
	assert.Equal(t, 5.0, ins.Result.(map[string]any)["bucket"])
	assert.Equal(t, 5.0, got.Result.(map[string]any)["bucket"])
}

func TestSessions_UnknownOpsShareMetricLabels(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[SessionView](t, do(t, h, http.MethodPost, "/v1/sessions", nil)).ID
	path := "/v1/sessions/" + id + "/ops"

	for i := 0; i < 20; i++ {
		rec := do(t, h, http.MethodPost, path, OpRequest{Container: fmt.Sprintf("junk%d", i), Op: "x"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, path, OpRequest{Container: "stack", Op: "push", Item: "a"}).Code)

	body := do(t, h, http.MethodGet, "/metrics", nil).Body.String()
	var series []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "stepwise_container_ops_total{") {
			series = append(series, line)
		}
	}
	assert.ElementsMatch(t, []string{
		`stepwise_container_ops_total{container="stack",op="push",outcome="ok"} 1`,
		`stepwise_container_ops_total{container="unknown",op="unknown",outcome="InvalidInput"} 20`,
	}, series)
}

func TestSessions_Delete(t *testing.T) {
	_, h := newTestServer(t)
	id := decode[SessionView](t, do(t, h, http.MethodPost, "/v1/sessions", nil)).ID

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/v1/sessions/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/v1/sessions/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/v1/sessions/"+id+"/ops",
		OpRequest{Container: "stack", Op: "peek"}).Code)
}
