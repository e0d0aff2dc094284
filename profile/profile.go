// Package profile builds the initial "media dump" parameters for a dumping session.
package profile

import (
	"fmt"
	"math"

	"github.com/mwantia/dumpargs/cmd"
	"github.com/mwantia/dumpargs/data"
)

// Options are the user preferences that influence a default profile.
// Loading and persisting them is the caller's concern.
type Options struct {
	// Number of additional read passes over bad sectors, 0 disables
	RereadCount int
	// Enables the global debug flag
	EnableDebug bool
	// Enables the global verbose flag
	EnableVerbose bool
	// Continue dumping on unrecoverable errors
	ForceDumping bool
	// Strip serial numbers and other personal data from the output metadata
	StripPersonalData bool
}

// BuildDefault creates the "media dump" state for a dumping session.
//
// The media-type dependent defaults and the user options are only applied when
// mediaType is valid for system; otherwise the state carries the command,
// positionals and speed only.
func BuildDefault(driveLetter rune, filename string, driveSpeed *int, system System, mediaType MediaType, options *Options) *data.State {
	state := data.NewCommandState(cmd.CommandMediaDump)
	state.Input = fmt.Sprintf("%c:", driveLetter)
	state.Output = filename

	if driveSpeed != nil {
		state.SetInt8(data.FlagSpeed, clampInt8(*driveSpeed))
	}

	if !system.Supports(mediaType) {
		return state
	}

	if options == nil {
		options = &Options{}
	}

	if options.RereadCount > 0 {
		state.SetInt16(data.FlagRetryPasses, clampInt16(options.RereadCount))
	}

	state.Set(data.FlagDebug, options.EnableDebug)
	state.Set(data.FlagVerbose, options.EnableVerbose)
	state.Set(data.FlagForce, options.ForceDumping)
	state.Set(data.FlagPrivate, options.StripPersonalData)

	switch {
	case mediaType.HasRemovableEncryption():
		state.Set(data.FlagStoreEncrypted, true)
		state.Set(data.FlagTitleKeys, false)
		state.Set(data.FlagTrim, true)
	case mediaType == MediaTypeCDROM:
		state.Set(data.FlagFirstPregap, true)
		state.Set(data.FlagFixOffset, true)
	}

	return state
}

func clampInt8(v int) int8 {
	return int8(max(math.MinInt8, min(v, math.MaxInt8)))
}

func clampInt16(v int) int16 {
	return int16(max(math.MinInt16, min(v, math.MaxInt16)))
}
