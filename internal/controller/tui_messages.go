package controller

// Message types.
type discoveryMsg struct {
	targets int
	workers int
	added   int
	deleted int
}

type diffDoneMsg struct {
	path      string
	equal     bool
	diffCount uint64
}

type finishedMsg struct{}
