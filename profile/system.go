package profile

import (
	"fmt"
	"slices"
	"strings"
)

// System identifies the platform a disc belongs to.
type System int

const (
	SystemNone System = iota
	SystemIBMPCCompatible
	SystemAppleMacintosh
	SystemAudioCD
	SystemSonyPlayStation
	SystemSonyPlayStation2
	SystemSonyPlayStation3
	SystemSonyPlayStationPortable
	SystemMicrosoftXbox
	SystemNintendoGameCube
	SystemNintendoWii
	SystemHDDVDVideo
	SystemBDVideo
)

type systemInfo struct {
	name  string
	media []MediaType
}

var systems = map[System]systemInfo{
	SystemNone:                    {name: "none"},
	SystemIBMPCCompatible:         {name: "ibm-pc", media: []MediaType{MediaTypeCDROM, MediaTypeDVD, MediaTypeBluRay, MediaTypeFloppyDisk, MediaTypeHardDisk}},
	SystemAppleMacintosh:          {name: "mac", media: []MediaType{MediaTypeCDROM, MediaTypeDVD, MediaTypeFloppyDisk, MediaTypeHardDisk}},
	SystemAudioCD:                 {name: "audio-cd", media: []MediaType{MediaTypeCDROM}},
	SystemSonyPlayStation:         {name: "psx", media: []MediaType{MediaTypeCDROM}},
	SystemSonyPlayStation2:        {name: "ps2", media: []MediaType{MediaTypeCDROM, MediaTypeDVD}},
	SystemSonyPlayStation3:        {name: "ps3", media: []MediaType{MediaTypeBluRay}},
	SystemSonyPlayStationPortable: {name: "psp", media: []MediaType{MediaTypeUMD}},
	SystemMicrosoftXbox:           {name: "xbox", media: []MediaType{MediaTypeCDROM, MediaTypeDVD}},
	SystemNintendoGameCube:        {name: "gamecube", media: []MediaType{MediaTypeNintendoGameCubeGameDisc}},
	SystemNintendoWii:             {name: "wii", media: []MediaType{MediaTypeNintendoWiiOpticalDisc}},
	SystemHDDVDVideo:              {name: "hddvd-video", media: []MediaType{MediaTypeHDDVD}},
	SystemBDVideo:                 {name: "bd-video", media: []MediaType{MediaTypeBluRay}},
}

func (s System) String() string {
	if info, ok := systems[s]; ok {
		return info.name
	}
	return "unknown"
}

// MediaTypes returns the media types valid for the system.
func (s System) MediaTypes() []MediaType {
	return slices.Clone(systems[s].media)
}

// Supports reports whether the media type is valid for the system.
func (s System) Supports(m MediaType) bool {
	return slices.Contains(systems[s].media, m)
}

// ParseSystem resolves a system name as returned by System.String.
func ParseSystem(name string) (System, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, info := range systems {
		if info.name == name {
			return s, nil
		}
	}
	return SystemNone, fmt.Errorf("unknown system '%s'", name)
}

// Systems returns every known system except SystemNone.
func Systems() []System {
	list := make([]System, 0, len(systems))
	for s := range systems {
		if s != SystemNone {
			list = append(list, s)
		}
	}
	slices.Sort(list)
	return list
}
