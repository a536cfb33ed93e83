package portrunner

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// PortInfo describes a discovered serial device
type PortInfo struct {
	Name        string
	Path        string
	Description string
}

// deviceClasses maps known serial device name patterns to a human-readable
// description. Virtual terminals and pseudo-terminals are deliberately
// absent so they never show up as candidate link endpoints.
var deviceClasses = []struct {
	pattern     *regexp.Regexp
	description string
}{
	{regexp.MustCompile(`^ttyUSB\d+$`), "USB Serial Port"},
	{regexp.MustCompile(`^ttyACM\d+$`), "USB CDC/ACM Device"},
	{regexp.MustCompile(`^ttyAMA\d+$`), "ARM Serial Port"},
	{regexp.MustCompile(`^ttymxc\d+$`), "i.MX Serial Port"},
	{regexp.MustCompile(`^ttyO\d+$`), "OMAP Serial Port"},
	{regexp.MustCompile(`^ttySAC\d+$`), "Samsung Serial Port"},
	{regexp.MustCompile(`^ttyTHS\d+$`), "Tegra Serial Port"},
	{regexp.MustCompile(`^ttyS\d+$`), "Standard Serial Port"},
}

// ListPorts returns the serial devices available as link endpoints, sorted
// by path. Only character devices matching a known serial naming pattern
// are included.
func ListPorts() ([]PortInfo, error) {
	entries, err := os.ReadDir("/dev")
	if err != nil {
		return nil, err
	}

	var ports []PortInfo
	for _, entry := range entries {
		name := entry.Name()
		description, ok := classifyDevice(name)
		if !ok {
			continue
		}

		path := filepath.Join("/dev", name)
		if !isCharacterDevice(path) {
			continue
		}

		ports = append(ports, PortInfo{
			Name:        name,
			Path:        path,
			Description: description,
		})
	}

	sort.Slice(ports, func(i, j int) bool { return ports[i].Path < ports[j].Path })
	return ports, nil
}

// classifyDevice matches a /dev entry name against the known serial device
// classes and returns its description.
func classifyDevice(name string) (string, bool) {
	for _, class := range deviceClasses {
		if class.pattern.MatchString(name) {
			return class.description, true
		}
	}
	return "", false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
