// Package device defines the contracts between the GPU family report and
// the platform that exposes GPUs.
//
// A Platform returns the default Device, the full device list, and
// resolves catalog identifiers into native Family values. A Device
// answers SupportsFamily for a resolved family and reports its optional
// Characteristics.
//
// Characteristics follow a present/absent model: a probe the host cannot
// answer is missing from the map, never reported as false. Availability
// holds the OS-version requirements for each probe:
//
//	chars := device.DefaultAvailability.Characteristics(host.Detect(), device.Probe{
//	    Headless: &headless,
//	})
//	if v, ok := chars.Get(device.CharHeadless); ok {
//	    fmt.Println("Headless:", v)
//	}
//
// Implementations live in the metal and fixture subpackages.
package device
