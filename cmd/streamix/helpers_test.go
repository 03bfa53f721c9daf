package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeUpstreams struct {
	tmdb         *httptest.Server
	tvmaze       *httptest.Server
	tmdbRequests atomic.Int32
	tmdbStatus   int
}

func newFakeUpstreams(t *testing.T) *fakeUpstreams {
	t.Helper()
	f := &fakeUpstreams{tmdbStatus: http.StatusOK}

	f.tmdb = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.tmdbRequests.Add(1)
		if f.tmdbStatus != http.StatusOK {
			http.Error(w, "unavailable", f.tmdbStatus)
			return
		}
		switch r.URL.Path {
		case "/movie/popular":
			fmt.Fprint(w, `{"results":[{"id":1,"title":"Dune","poster_path":"/dune.jpg","vote_average":7.8,"release_date":"2021-10-22","overview":"Spice."}]}`)
		case "/trending/movie/week":
			fmt.Fprint(w, `{"results":[{"id":2,"title":"Heat","poster_path":"/heat.jpg","vote_average":8.3}]}`)
		case "/discover/movie":
			fmt.Fprint(w, `{"results":[{"id":3,"title":"Speed","poster_path":null,"vote_average":7.2}]}`)
		case "/search/movie":
			fmt.Fprintf(w, `{"results":[{"id":4,"title":"Found %s","poster_path":"/f.jpg","vote_average":6.0}]}`, r.URL.Query().Get("query"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.tmdb.Close)

	f.tvmaze = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/shows":
			fmt.Fprint(w, `[{"id":1,"name":"Under the Dome","premiered":"2013-06-24","summary":"<p>A <b>dome</b>.</p>","rating":{"average":6.5},"image":{"medium":"/m/1.jpg","original":"/o/1.jpg"}}]`)
		case "/search/shows":
			fmt.Fprintf(w, `[{"score":1,"show":{"id":9,"name":"Show %s","rating":{"average":null},"image":{"medium":"/m/9.jpg"}}}]`, r.URL.Query().Get("q"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.tvmaze.Close)

	return f
}

func (f *fakeUpstreams) writeConfig(t *testing.T, apiKey string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`tmdb:
  api_key: %q
  base_url: %s
  image_base_url: https://img.test/t/p/original
tvmaze:
  base_url: %s
  image_base_url: https://static.test
log:
  level: info
  file: %s
`, apiKey, f.tmdb.URL, f.tvmaze.URL, filepath.Join(dir, "logs", "streamix.log"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TMDB_API_KEY", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
