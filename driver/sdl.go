package driver

import (
	"errors"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/vkcore/core"
)

// Window is a Vulkan-capable SDL window together with the loader entry
// point obtained from SDL. It is the bootstrap for presentable setups:
// create the window first, build the provider from its proc address, add
// its required extensions to the instance parameters, then create the
// surface against the live instance.
type Window struct {
	window *sdl.Window
}

// NewWindow initializes SDL video, loads the Vulkan library through SDL
// and opens a Vulkan-capable window.
func NewWindow(title string, width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	return &Window{window: window}, nil
}

// ProcAddr returns the loader entry point SDL resolved, for handing to
// New.
func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// RequiredExtensions lists the instance extensions the window needs for
// surface creation.
func (w *Window) RequiredExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// CreateSurface creates a window surface against the given instance and
// attaches it.
func (w *Window) CreateSurface(instance *core.Instance) (core.SurfaceHandle, error) {
	surface, err := w.window.VulkanCreateSurface(asVkInstance(instance.Handle()))
	if err != nil {
		return 0, errors.New("sdl.Window.VulkanCreateSurface(): " + err.Error())
	}
	handle := core.SurfaceHandle(uintptr(surface))
	instance.SetSurface(handle)
	return handle, nil
}

// Destroy tears the window and the SDL-loaded Vulkan library down.
func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}
