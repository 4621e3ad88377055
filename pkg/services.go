package egeria

import (
	"sort"
)

// Tier groups view services by the composite facade that exposes them
type Tier int

const (
	TierTech Tier = iota
	TierOps
	TierConfig
)

// String returns the lowercase tier name
func (t Tier) String() string {
	switch t {
	case TierTech:
		return "tech"
	case TierOps:
		return "ops"
	case TierConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ServiceInfo describes one facade known to the composite clients
type ServiceInfo struct {
	Name        string
	DisplayName string
	Description string
	Tier        Tier
	build       func(*ServerClient) any
}

var services = map[string]ServiceInfo{}

// RegisterService adds a facade to the global registry.
// This should be called in init() functions of facade files.
func RegisterService(info ServiceInfo) {
	services[info.Name] = info
}

// Services returns every registered facade sorted by name
func Services() []ServiceInfo {
	sorted := make([]ServiceInfo, 0, len(services))
	for _, s := range services {
		sorted = append(sorted, s)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// ServicesInTier returns the registered facades of one tier sorted by name
func ServicesInTier(tier Tier) []ServiceInfo {
	var out []ServiceInfo
	for _, s := range Services() {
		if s.Tier == tier {
			out = append(out, s)
		}
	}
	return out
}

// LookupService finds a registered facade by name
func LookupService(name string) (ServiceInfo, bool) {
	s, ok := services[name]
	return s, ok
}

func register[T any](name, displayName, description string, tier Tier, build func(*ServerClient) T) {
	RegisterService(ServiceInfo{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Tier:        tier,
		build:       func(c *ServerClient) any { return build(c) },
	})
}
