// Package jobs holds the periodic maintenance jobs the server schedules,
// such as repairing teams whose owner never got a member record.
package jobs

import (
	"context"
	"sort"
	"sync"
)

// Job is a named maintenance job.
type Job struct {
	Name   string
	Runner Runner
}

// Runner reads its cron spec from the server config and builds the function
// the scheduler calls. An empty spec leaves the job unscheduled.
type Runner interface {
	Spec(context.Context) string
	Func(context.Context) func()
}

var (
	mtx      sync.Mutex
	registry = map[string]Runner{}
)

// Register adds a job under name, replacing any job already registered
// with that name.
func Register(name string, runner Runner) {
	mtx.Lock()
	defer mtx.Unlock()
	registry[name] = runner
}

// Lookup returns the job registered under name.
func Lookup(name string) (Job, bool) {
	mtx.Lock()
	defer mtx.Unlock()
	r, ok := registry[name]
	return Job{Name: name, Runner: r}, ok
}

// List returns the registered jobs sorted by name.
func List() []Job {
	mtx.Lock()
	defer mtx.Unlock()
	list := make([]Job, 0, len(registry))
	for name, r := range registry {
		list = append(list, Job{Name: name, Runner: r})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
