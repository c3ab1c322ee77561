package main

import (
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/vkcore/core"
	"github.com/devblok/vkcore/driver"
)

// report is the JSON document vkinfo prints: the loader's layers and
// extensions plus one entry per physical device.
type report struct {
	Version    string                    `json:"version"`
	Layers     []string                  `json:"layers"`
	Extensions []string                  `json:"extensions"`
	Devices    []core.PhysicalDeviceInfo `json:"devices"`
	Picked     *pickedReport             `json:"picked,omitempty"`
}

type pickedReport struct {
	Name          string `json:"name"`
	GraphicsQueue uint32 `json:"graphicsQueue"`
}

func main() {
	cfg := core.ConfigFromEnv()

	provider, err := driver.New(nil)
	if err != nil {
		log.Fatal(err)
	}

	instance := core.NewInstance(provider, core.NewInstanceCreateInfo(provider, cfg, nil, 0).
		SetApplicationInfo("vkinfo", 1))
	defer instance.Destroy()

	out := report{
		Version:    instance.Version().String(),
		Layers:     core.EnumerateInstanceLayerProperties(provider).Names(),
		Extensions: core.EnumerateInstanceExtensionProperties(provider).Names(),
	}

	devices := core.EnumerateDevices(instance)
	for i := range devices {
		out.Devices = append(out.Devices, devices[i].Info())
	}

	if device, err := core.TryPickDevice(instance); err != nil {
		log.Warnf("device selection: %s", err)
	} else {
		picked := pickedReport{Name: device.Name()}
		if family, err := device.TryPickQueueFamily(core.QueueGraphicsBit); err != nil {
			log.Warnf("queue selection: %s", err)
		} else {
			picked.GraphicsQueue = family
		}
		out.Picked = &picked
	}

	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", bytes)
}
