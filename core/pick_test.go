package core

import (
	"strings"
	"testing"
)

func TestTryPickQueueFamily(t *testing.T) {
	p := newFakeProvider()
	p.devices[0].families = []QueueFamilyRecord{
		{QueueFlags: QueueTransferBit, QueueCount: 2},
		{QueueFlags: QueueGraphicsBit | QueueComputeBit | QueueTransferBit, QueueCount: 16},
		{QueueFlags: QueueGraphicsBit | QueueComputeBit | QueueTransferBit, QueueCount: 8},
	}
	instance := newTestInstance(t, p, Config{})
	device := EnumerateDevices(instance)[0]

	// First superset wins, even when later families match too.
	if got, err := device.TryPickQueueFamily(QueueGraphicsBit); err != nil || got != 1 {
		t.Errorf("TryPickQueueFamily(Graphics) = %d, %v", got, err)
	}
	if got, err := device.TryPickQueueFamily(QueueTransferBit); err != nil || got != 0 {
		t.Errorf("TryPickQueueFamily(Transfer) = %d, %v", got, err)
	}
	if got, err := device.TryPickQueueFamily(QueueGraphicsBit | QueueComputeBit); err != nil || got != 1 {
		t.Errorf("TryPickQueueFamily(Graphics|Compute) = %d, %v", got, err)
	}

	_, err := device.TryPickQueueFamily(QueueProtectedBit)
	if err == nil {
		t.Fatal("expected an error for an unsatisfiable request")
	}
	if want := "no Protected found among 3 queue families"; err.Error() != want {
		t.Errorf("error = %q", err)
	}
}

func TestPickQueueFamilyFatal(t *testing.T) {
	failures := captureFailures(t)
	p := newFakeProvider()
	instance := newTestInstance(t, p, Config{})
	device := EnumerateDevices(instance)[0]

	if got := device.PickQueueFamily(QueueGraphicsBit); got != 0 {
		t.Errorf("PickQueueFamily(Graphics) = %d", got)
	}
	if len(*failures) != 0 {
		t.Fatalf("successful pick reported a failure: %v", *failures)
	}

	device.PickQueueFamily(QueueProtectedBit)
	if len(*failures) != 1 {
		t.Fatalf("recorded %d failures, want 1", len(*failures))
	}
	if !strings.Contains((*failures)[0], "no Protected found") {
		t.Errorf("failure = %q", (*failures)[0])
	}
}

func TestTryPickDevice(t *testing.T) {
	cases := []struct {
		selector string
		wantName string
		wantErr  string
	}{
		{selector: "", wantName: "Fake GPU"},
		{selector: "0", wantName: "Fake GPU"},
		{selector: "1", wantName: "Fake iGPU"},
		{selector: "2", wantErr: "index 2 out of bounds for 2 devices"},
		{selector: "99999999999999999999", wantErr: "index 99999999999999999999 out of bounds for 2 devices"},
		{selector: "discrete", wantName: "Fake GPU"},
		{selector: "integrated", wantName: "Fake iGPU"},
		{selector: "cpu", wantErr: "no device of type cpu found among 2 devices"},
		{selector: "fastest", wantErr: "unknown device type fastest"},
	}
	for _, c := range cases {
		t.Run("selector "+c.selector, func(t *testing.T) {
			p := twoDeviceProvider()
			instance := newTestInstance(t, p, Config{Device: c.selector})

			device, err := TryPickDevice(instance)
			if c.wantErr != "" {
				if err == nil || err.Error() != c.wantErr {
					t.Fatalf("error = %v, want %q", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if device.Name() != c.wantName {
				t.Errorf("picked %q, want %q", device.Name(), c.wantName)
			}
		})
	}
}

func TestTryPickDeviceNoDevices(t *testing.T) {
	p := newFakeProvider()
	p.devices = nil
	instance := newTestInstance(t, p, Config{})

	_, err := TryPickDevice(instance)
	if err == nil || err.Error() != "no devices found" {
		t.Errorf("error = %v", err)
	}
}

func TestPickDeviceFatal(t *testing.T) {
	failures := captureFailures(t)
	p := twoDeviceProvider()
	instance := newTestInstance(t, p, Config{Device: "virtual"})

	PickDevice(instance)
	if len(*failures) != 1 {
		t.Fatalf("recorded %d failures, want 1", len(*failures))
	}
	if !strings.Contains((*failures)[0], "core.PickDevice()") {
		t.Errorf("failure = %q", (*failures)[0])
	}
}
