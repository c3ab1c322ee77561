package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TryPickQueueFamily returns the index of the first queue family whose
// capabilities are a superset of the given flags, or a recoverable error
// when no family qualifies.
func (d *DeviceProperties) TryPickQueueFamily(flags QueueFlags) (uint32, error) {
	families := d.QueueFamilyProperties()
	for i, family := range families {
		if family.QueueFlags&flags == flags {
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("no %s found among %d queue families", flags, len(families))
}

// PickQueueFamily is TryPickQueueFamily with failure treated as fatal.
func (d *DeviceProperties) PickQueueFamily(flags QueueFlags) uint32 {
	id, err := d.TryPickQueueFamily(flags)
	if err != nil {
		failureHandler("core.DeviceProperties.PickQueueFamily(): " + err.Error())
		return 0
	}
	return id
}

// TryPickDevice selects a physical device of an instance according to the
// configuration's device selector: empty picks the first device, digits
// pick by index, anything else is matched as a type keyword. Errors are
// recoverable so callers can fall back or report.
func TryPickDevice(instance *Instance) (DeviceProperties, error) {
	devices := EnumerateDevices(instance)
	selector := strings.TrimSpace(instance.config.Device)

	if selector == "" {
		if len(devices) == 0 {
			return DeviceProperties{}, fmt.Errorf("no devices found")
		}
		return devices[0], nil
	}

	if isDigits(selector) {
		// A parse failure here can only be overflow, which is out of
		// bounds for any real device list.
		index, err := strconv.Atoi(selector)
		if err != nil || index >= len(devices) {
			return DeviceProperties{}, fmt.Errorf("index %s out of bounds for %d devices", selector, len(devices))
		}
		return devices[index], nil
	}

	var wanted DeviceType
	switch selector {
	case "integrated":
		wanted = DeviceTypeIntegratedGpu
	case "discrete":
		wanted = DeviceTypeDiscreteGpu
	case "virtual":
		wanted = DeviceTypeVirtualGpu
	case "cpu":
		wanted = DeviceTypeCpu
	default:
		return DeviceProperties{}, fmt.Errorf("unknown device type %s", selector)
	}

	for _, device := range devices {
		if device.Type() == wanted {
			return device, nil
		}
	}
	return DeviceProperties{}, fmt.Errorf("no device of type %s found among %d devices", selector, len(devices))
}

// PickDevice is TryPickDevice with failure treated as fatal.
func PickDevice(instance *Instance) DeviceProperties {
	device, err := TryPickDevice(instance)
	if err != nil {
		failureHandler("core.PickDevice(): " + err.Error())
		return DeviceProperties{instance: instance}
	}
	return device
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) != 0
}
