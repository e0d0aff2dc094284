package profile

import (
	"fmt"
	"slices"
	"strings"
)

// MediaType identifies the physical medium inserted in the drive.
type MediaType int

const (
	MediaTypeNone MediaType = iota
	MediaTypeCDROM
	MediaTypeDVD
	MediaTypeHDDVD
	MediaTypeBluRay
	MediaTypeFloppyDisk
	MediaTypeHardDisk
	MediaTypeNintendoGameCubeGameDisc
	MediaTypeNintendoWiiOpticalDisc
	MediaTypeUMD
)

var mediaTypeNames = map[MediaType]string{
	MediaTypeNone:                     "none",
	MediaTypeCDROM:                    "cdrom",
	MediaTypeDVD:                      "dvd",
	MediaTypeHDDVD:                    "hddvd",
	MediaTypeBluRay:                   "bluray",
	MediaTypeFloppyDisk:               "floppy",
	MediaTypeHardDisk:                 "hdd",
	MediaTypeNintendoGameCubeGameDisc: "gamecube-disc",
	MediaTypeNintendoWiiOpticalDisc:   "wii-disc",
	MediaTypeUMD:                      "umd",
}

func (m MediaType) String() string {
	if name, ok := mediaTypeNames[m]; ok {
		return name
	}
	return "unknown"
}

// HasRemovableEncryption reports whether discs of this type carry an encryption
// layer the dumping tool can keep or strip (CSS, AACS and console disc crypto).
func (m MediaType) HasRemovableEncryption() bool {
	switch m {
	case MediaTypeDVD, MediaTypeHDDVD, MediaTypeBluRay,
		MediaTypeNintendoGameCubeGameDisc, MediaTypeNintendoWiiOpticalDisc:
		return true
	default:
		return false
	}
}

// ParseMediaType resolves a media type name as returned by MediaType.String.
func ParseMediaType(name string) (MediaType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range mediaTypeNames {
		if n == name {
			return m, nil
		}
	}
	return MediaTypeNone, fmt.Errorf("unknown media type '%s'", name)
}

// MediaTypes returns every known media type except MediaTypeNone.
func MediaTypes() []MediaType {
	types := make([]MediaType, 0, len(mediaTypeNames))
	for m := range mediaTypeNames {
		if m != MediaTypeNone {
			types = append(types, m)
		}
	}
	slices.Sort(types)
	return types
}
