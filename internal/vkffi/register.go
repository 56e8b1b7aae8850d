// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

import (
	"log"
	"sync"

	"github.com/gviegas/vkreplay/driverapi"
)

// Loader is a named way of obtaining a driverapi.Table backed by a
// real driver library. vkffi registers the loader for the host
// platform from an init function, the same pattern driver.Register
// uses for GPU backends.
type Loader interface {
	Name() string
	Open() (driverapi.Table, error)
}

// Loaders returns the registered Loaders.
func Loaders() []Loader {
	loaderMu.Lock()
	defer loaderMu.Unlock()
	ls := make([]Loader, len(loaders))
	copy(ls, loaders)
	return ls
}

// Register registers a Loader. If a loader with the same name has
// already been registered, it is replaced.
func Register(l Loader) {
	loaderMu.Lock()
	defer loaderMu.Unlock()
	for i := range loaders {
		if loaders[i].Name() == l.Name() {
			loaders[i] = l
			log.Printf("[!] vkffi loader '%s' replaced", l.Name())
			return
		}
	}
	loaders = append(loaders, l)
	log.Printf("vkffi loader '%s' registered", l.Name())
}

var (
	loaderMu sync.Mutex
	loaders  []Loader = make([]Loader, 0, 1)
)

// vulkanLoader is the single Loader this package registers: a thin
// wrapper around Open so that callers that pick a loader by name (as
// driver.Drivers lets client code pick a GPU backend by name) see the
// same collaborator cmd/vkreplay calls directly.
type vulkanLoader struct{}

func (vulkanLoader) Name() string { return "vulkan" }

func (vulkanLoader) Open() (driverapi.Table, error) {
	return Open()
}

func init() {
	Register(vulkanLoader{})
}
