package systemreporter

type Report struct {
	Goroutines   int    `json:"goroutines"`
	CPUs         int    `json:"cpus"`
	HeapAlloc    string `json:"heap_alloc"`
	HeapObjects  uint64 `json:"heap_objects"`
	Sys          string `json:"sys"`
	NumGC        uint32 `json:"num_gc"`
	GCPauseTotal string `json:"gc_pause_total"`
}
