package testhelpers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/onsi/gomega/ghttp"
	digestpkg "github.com/opencontainers/go-digest"
)

type fakeManifest struct {
	mediaType string
	content   []byte
}

// FakeRegistry serves the read-only subset of the distribution API used
// for inventories: catalog, tag list and manifests by tag or digest.
type FakeRegistry struct {
	server       *ghttp.Server
	repositories map[string]map[string]digestpkg.Digest
	manifests    map[digestpkg.Digest]fakeManifest
	requests     map[string]int
	mutex        *sync.RWMutex
}

func NewFakeRegistry() *FakeRegistry {
	return &FakeRegistry{
		repositories: map[string]map[string]digestpkg.Digest{},
		manifests:    map[digestpkg.Digest]fakeManifest{},
		requests:     map[string]int{},
		mutex:        &sync.RWMutex{},
	}
}

func (r *FakeRegistry) Start() {
	r.server = ghttp.NewServer()
	r.server.SetAllowUnhandledRequests(true)
	r.server.SetUnhandledRequestStatusCode(http.StatusNotFound)

	r.server.RouteToHandler("GET", "/v2/_catalog", r.serveCatalog)
	r.server.RouteToHandler("GET", regexp.MustCompile(`^/v2/.+/tags/list$`), r.serveTags)
	r.server.RouteToHandler("GET", regexp.MustCompile(`^/v2/.+/manifests/.+$`), r.serveManifest)
	r.server.RouteToHandler("HEAD", regexp.MustCompile(`^/v2/.+/manifests/.+$`), r.serveManifest)
}

func (r *FakeRegistry) Stop() {
	r.server.Close()
}

// Addr is the host:port the registry listens on.
func (r *FakeRegistry) Addr() string {
	return r.server.Addr()
}

// AddManifest stores content under its digest and points the given tags
// of repository at it.
func (r *FakeRegistry) AddManifest(repository, mediaType string, content []byte, tags ...string) digestpkg.Digest {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	digest := digestpkg.FromBytes(content)
	r.manifests[digest] = fakeManifest{mediaType: mediaType, content: content}

	if _, ok := r.repositories[repository]; !ok {
		r.repositories[repository] = map[string]digestpkg.Digest{}
	}
	for _, tag := range tags {
		r.repositories[repository][tag] = digest
	}

	return digest
}

// RequestCount is the number of requests served for method and path.
func (r *FakeRegistry) RequestCount(method, path string) int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.requests[method+" "+path]
}

func (r *FakeRegistry) serveCatalog(w http.ResponseWriter, req *http.Request) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.requests[req.Method+" "+req.URL.Path]++

	names := []string{}
	for name := range r.repositories {
		names = append(names, name)
	}
	sort.Strings(names)

	last := req.URL.Query().Get("last")
	if last != "" {
		start := sort.SearchStrings(names, last)
		if start < len(names) && names[start] == last {
			start++
		}
		names = names[start:]
	}

	if n, err := strconv.Atoi(req.URL.Query().Get("n")); err == nil && n > 0 && n < len(names) {
		names = names[:n]
	}

	writeJSON(w, map[string]interface{}{"repositories": names})
}

func (r *FakeRegistry) serveTags(w http.ResponseWriter, req *http.Request) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.requests[req.Method+" "+req.URL.Path]++

	repository := strings.TrimSuffix(strings.TrimPrefix(req.URL.Path, "/v2/"), "/tags/list")
	tagged, ok := r.repositories[repository]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	tags := []string{}
	for tag := range tagged {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	writeJSON(w, map[string]interface{}{"name": repository, "tags": tags})
}

func (r *FakeRegistry) serveManifest(w http.ResponseWriter, req *http.Request) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.requests[req.Method+" "+req.URL.Path]++

	path := strings.TrimPrefix(req.URL.Path, "/v2/")
	separator := strings.LastIndex(path, "/manifests/")
	repository, reference := path[:separator], path[separator+len("/manifests/"):]

	digest := digestpkg.Digest(reference)
	if tagged, ok := r.repositories[repository][reference]; ok {
		digest = tagged
	}

	manifest, ok := r.manifests[digest]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", manifest.mediaType)
	w.Header().Set("Docker-Content-Digest", digest.String())
	w.Header().Set("Content-Length", strconv.Itoa(len(manifest.content)))
	w.WriteHeader(http.StatusOK)
	if req.Method == "GET" {
		_, _ = w.Write(manifest.content)
	}
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
