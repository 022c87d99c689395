package entities

// Icon is the closed set of FAQ category icons the guest UI knows how to
// draw. Anything else falls back to IconInfo at render time.
type Icon string

const (
	IconWifi        Icon = "wifi"
	IconThermometer Icon = "thermometer"
	IconInfo        Icon = "info"
	IconMapPin      Icon = "map-pin"
	IconImage       Icon = "image"
)

var knownIcons = map[Icon]bool{
	IconWifi:        true,
	IconThermometer: true,
	IconInfo:        true,
	IconMapPin:      true,
	IconImage:       true,
}

// Resolve maps an arbitrary icon tag to a known icon.
func (i Icon) Resolve() Icon {
	if knownIcons[i] {
		return i
	}
	return IconInfo
}
