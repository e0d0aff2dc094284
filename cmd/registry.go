package cmd

import (
	"strings"

	"github.com/mwantia/dumpargs/data"
	"github.com/tidwall/btree"
)

// Arity describes the positional arguments a command expects after its flags.
type Arity int

const (
	ArityNone        Arity = iota // No positionals
	ArityInput                    // <input>
	ArityInputPair                // <input> <input2>
	ArityInputOutput              // <input> <output>
	ArityRemoteHost               // <host>
)

func (a Arity) String() string {
	switch a {
	case ArityInput:
		return "input"
	case ArityInputPair:
		return "input-pair"
	case ArityInputOutput:
		return "input-output"
	case ArityRemoteHost:
		return "remote-host"
	default:
		return "none"
	}
}

// Count returns the number of positional tokens of the arity class.
func (a Arity) Count() int {
	switch a {
	case ArityInput, ArityRemoteHost:
		return 1
	case ArityInputPair, ArityInputOutput:
		return 2
	default:
		return 0
	}
}

// Family names, long spellings
const (
	FamilyArchive    = "archive"
	FamilyDatabase   = "database"
	FamilyDevice     = "device"
	FamilyFilesystem = "filesystem"
	FamilyImage      = "image"
	FamilyMedia      = "media"
)

var (
	CommandArchiveExtract = data.Command{Family: FamilyArchive, Action: "extract"}
	CommandArchiveInfo    = data.Command{Family: FamilyArchive, Action: "info"}
	CommandArchiveList    = data.Command{Family: FamilyArchive, Action: "list"}

	CommandDatabaseStats  = data.Command{Family: FamilyDatabase, Action: "stats"}
	CommandDatabaseUpdate = data.Command{Family: FamilyDatabase, Action: "update"}

	CommandDeviceInfo   = data.Command{Family: FamilyDevice, Action: "info"}
	CommandDeviceList   = data.Command{Family: FamilyDevice, Action: "list"}
	CommandDeviceReport = data.Command{Family: FamilyDevice, Action: "report"}

	CommandFilesystemExtract = data.Command{Family: FamilyFilesystem, Action: "extract"}
	CommandFilesystemInfo    = data.Command{Family: FamilyFilesystem, Action: "info"}
	CommandFilesystemList    = data.Command{Family: FamilyFilesystem, Action: "list"}
	CommandFilesystemOptions = data.Command{Family: FamilyFilesystem, Action: "options"}

	CommandImageChecksum      = data.Command{Family: FamilyImage, Action: "checksum"}
	CommandImageCompare       = data.Command{Family: FamilyImage, Action: "compare"}
	CommandImageConvert       = data.Command{Family: FamilyImage, Action: "convert"}
	CommandImageCreateSidecar = data.Command{Family: FamilyImage, Action: "create-sidecar"}
	CommandImageDecode        = data.Command{Family: FamilyImage, Action: "decode"}
	CommandImageEntropy       = data.Command{Family: FamilyImage, Action: "entropy"}
	CommandImageInfo          = data.Command{Family: FamilyImage, Action: "info"}
	CommandImagePrint         = data.Command{Family: FamilyImage, Action: "print"}
	CommandImageVerify        = data.Command{Family: FamilyImage, Action: "verify"}

	CommandMediaDump = data.Command{Family: FamilyMedia, Action: "dump"}
	CommandMediaInfo = data.Command{Family: FamilyMedia, Action: "info"}
	CommandMediaScan = data.Command{Family: FamilyMedia, Action: "scan"}

	CommandConfigure      = data.Command{Action: "configure"}
	CommandFormats        = data.Command{Action: "formats"}
	CommandListEncodings  = data.Command{Action: "list-encodings"}
	CommandListNamespaces = data.Command{Action: "list-namespaces"}
	CommandRemote         = data.Command{Action: "remote"}
)

// SentinelAll is the stored value of the literal "all" accepted by the
// length flag of "image decode".
const SentinelAll int64 = -1

type action struct {
	spellings []string
	command   data.Command
}

type family struct {
	spellings []string
	actions   []action
}

// families is the first level of the command grammar. The first spelling of each
// family is its long form.
var families = []family{
	{
		spellings: []string{FamilyArchive, "arc"},
		actions: []action{
			{spellings: []string{"extract", "x"}, command: CommandArchiveExtract},
			{spellings: []string{"info"}, command: CommandArchiveInfo},
			{spellings: []string{"list", "ls"}, command: CommandArchiveList},
		},
	},
	{
		spellings: []string{FamilyDatabase, "db"},
		actions: []action{
			{spellings: []string{"stats"}, command: CommandDatabaseStats},
			{spellings: []string{"update"}, command: CommandDatabaseUpdate},
		},
	},
	{
		spellings: []string{FamilyDevice, "dev"},
		actions: []action{
			{spellings: []string{"info"}, command: CommandDeviceInfo},
			{spellings: []string{"list", "ls"}, command: CommandDeviceList},
			{spellings: []string{"report"}, command: CommandDeviceReport},
		},
	},
	{
		spellings: []string{FamilyFilesystem, "fs", "fi"},
		actions: []action{
			{spellings: []string{"extract", "x"}, command: CommandFilesystemExtract},
			{spellings: []string{"info"}, command: CommandFilesystemInfo},
			{spellings: []string{"list", "ls"}, command: CommandFilesystemList},
			{spellings: []string{"options"}, command: CommandFilesystemOptions},
		},
	},
	{
		spellings: []string{FamilyImage, "i", "img"},
		actions: []action{
			{spellings: []string{"checksum", "chk"}, command: CommandImageChecksum},
			{spellings: []string{"compare", "cmp"}, command: CommandImageCompare},
			{spellings: []string{"convert"}, command: CommandImageConvert},
			{spellings: []string{"create-sidecar", "cs"}, command: CommandImageCreateSidecar},
			{spellings: []string{"decode"}, command: CommandImageDecode},
			{spellings: []string{"entropy"}, command: CommandImageEntropy},
			{spellings: []string{"info"}, command: CommandImageInfo},
			{spellings: []string{"print"}, command: CommandImagePrint},
			{spellings: []string{"verify"}, command: CommandImageVerify},
		},
	},
	{
		spellings: []string{FamilyMedia, "m"},
		actions: []action{
			{spellings: []string{"dump"}, command: CommandMediaDump},
			{spellings: []string{"info"}, command: CommandMediaInfo},
			{spellings: []string{"scan"}, command: CommandMediaScan},
			// Historical alias, resolves outside its own family
			{spellings: []string{"compare", "cmp"}, command: CommandImageCompare},
		},
	},
}

var standalones = []action{
	{spellings: []string{"configure"}, command: CommandConfigure},
	{spellings: []string{"formats"}, command: CommandFormats},
	{spellings: []string{"list-encodings"}, command: CommandListEncodings},
	{spellings: []string{"list-namespaces"}, command: CommandListNamespaces},
	{spellings: []string{"remote"}, command: CommandRemote},
}

type entry struct {
	command data.Command
	arity   Arity
	flags   []data.Flag
	// Typed flags whose missing or malformed value aborts parsing
	required []data.Flag
}

var fixSubchannelFlags = []data.Flag{
	data.FlagFixSubchannel,
	data.FlagFixSubchannelCrc,
	data.FlagFixSubchannelPosition,
	data.FlagGenerateSubchannels,
}

// entries is the support matrix. Commands without flags still need an entry when
// they take positionals.
var entries = []entry{
	{command: CommandArchiveExtract, arity: ArityInputOutput, flags: []data.Flag{
		data.FlagEncoding, data.FlagExtendedAttributes,
	}},
	{command: CommandArchiveInfo, arity: ArityInput, flags: []data.Flag{
		data.FlagEncoding,
	}},
	{command: CommandArchiveList, arity: ArityInput, flags: []data.Flag{
		data.FlagEncoding, data.FlagLongFormat,
	}},
	{command: CommandDatabaseStats, arity: ArityNone},
	{command: CommandDatabaseUpdate, arity: ArityNone, flags: []data.Flag{
		data.FlagClear, data.FlagClearAll,
	}},
	{command: CommandDeviceInfo, arity: ArityInput, flags: []data.Flag{
		data.FlagOutputPrefix,
	}},
	{command: CommandDeviceList, arity: ArityNone},
	{command: CommandDeviceReport, arity: ArityInput, flags: []data.Flag{
		data.FlagTrapDisc,
	}},
	{command: CommandFilesystemExtract, arity: ArityInputOutput, flags: []data.Flag{
		data.FlagEncoding, data.FlagExtendedAttributes, data.FlagNamespace, data.FlagOptions,
	}},
	{command: CommandFilesystemInfo, arity: ArityInput, flags: []data.Flag{
		data.FlagEncoding, data.FlagFilesystems, data.FlagPartitions,
	}},
	{command: CommandFilesystemList, arity: ArityInput, flags: []data.Flag{
		data.FlagEncoding, data.FlagLongFormat, data.FlagNamespace, data.FlagOptions,
	}},
	{command: CommandFilesystemOptions, arity: ArityNone},
	{command: CommandImageChecksum, arity: ArityInput, flags: []data.Flag{
		data.FlagAdler32, data.FlagCRC16, data.FlagCRC32, data.FlagCRC64,
		data.FlagFletcher16, data.FlagFletcher32, data.FlagMD5, data.FlagSeparatedTracks,
		data.FlagSHA1, data.FlagSHA256, data.FlagSHA384, data.FlagSHA512,
		data.FlagSpamSum, data.FlagWholeDisc,
	}},
	{command: CommandImageCompare, arity: ArityInputPair},
	{command: CommandImageConvert, arity: ArityInputOutput, flags: append([]data.Flag{
		data.FlagComments, data.FlagCount, data.FlagCreator,
		data.FlagDriveManufacturer, data.FlagDriveModel, data.FlagDriveRevision, data.FlagDriveSerial,
		data.FlagForce, data.FlagFormat, data.FlagGeometry,
		data.FlagMediaBarcode, data.FlagMediaLastSequence, data.FlagMediaManufacturer, data.FlagMediaModel,
		data.FlagMediaPartNumber, data.FlagMediaSequence, data.FlagMediaSerial, data.FlagMediaTitle,
		data.FlagOptions, data.FlagResumeFile, data.FlagXMLSidecar,
	}, fixSubchannelFlags...)},
	{command: CommandImageCreateSidecar, arity: ArityInput, flags: []data.Flag{
		data.FlagBlockSize, data.FlagEncoding, data.FlagTape,
	}},
	{command: CommandImageDecode, arity: ArityInput, flags: []data.Flag{
		data.FlagDiskTags, data.FlagLength, data.FlagSectorTags, data.FlagStart,
	}, required: []data.Flag{data.FlagStart}},
	{command: CommandImageEntropy, arity: ArityInput, flags: []data.Flag{
		data.FlagDuplicatedSectors, data.FlagSeparatedTracks, data.FlagWholeDisc,
	}},
	{command: CommandImageInfo, arity: ArityInput},
	{command: CommandImagePrint, arity: ArityInput, flags: []data.Flag{
		data.FlagLength, data.FlagLongSectors, data.FlagStart, data.FlagWidth,
	}, required: []data.Flag{data.FlagStart}},
	{command: CommandImageVerify, arity: ArityInput, flags: []data.Flag{
		data.FlagVerifyDisc, data.FlagVerifySectors,
	}},
	{command: CommandMediaDump, arity: ArityInputOutput, flags: append([]data.Flag{
		data.FlagEject, data.FlagEncoding, data.FlagFirstPregap, data.FlagFixOffset,
		data.FlagForce, data.FlagFormat, data.FlagMaxBlocks, data.FlagMetadata,
		data.FlagOptions, data.FlagPersistent, data.FlagPrivate, data.FlagResume,
		data.FlagRetryPasses, data.FlagRetrySubchannel, data.FlagSkip, data.FlagSkipCdiReadyHole,
		data.FlagSpeed, data.FlagStopOnError, data.FlagStoreEncrypted, data.FlagSubchannel,
		data.FlagTitleKeys, data.FlagTrim, data.FlagUseBufferedReads, data.FlagXMLSidecar,
	}, fixSubchannelFlags...)},
	{command: CommandMediaInfo, arity: ArityInput, flags: []data.Flag{
		data.FlagOutputPrefix,
	}},
	{command: CommandMediaScan, arity: ArityInput, flags: []data.Flag{
		data.FlagImgBurnLog, data.FlagMHDDLog, data.FlagUseBufferedReads,
	}},
	{command: CommandConfigure, arity: ArityNone},
	{command: CommandFormats, arity: ArityNone},
	{command: CommandListEncodings, arity: ArityNone},
	{command: CommandListNamespaces, arity: ArityNone},
	{command: CommandRemote, arity: ArityRemoteHost},
}

type sentinelKey struct {
	command data.Command
	flag    data.Flag
}

// sentinels maps a command/flag pair to the literal stored as SentinelAll.
var sentinels = map[sentinelKey]string{
	{command: CommandImageDecode, flag: data.FlagLength}: "all",
}

// flagLess orders flags for emission: by kind group, then by long name.
func flagLess(a, b data.Flag) bool {
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	return a.Long() < b.Long()
}

type compiled struct {
	entry
	ordered   []data.Flag
	supported map[data.Flag]bool
	mandatory map[data.Flag]bool
}

var registry = compile()

func compile() map[data.Command]*compiled {
	result := make(map[data.Command]*compiled, len(entries))
	for _, e := range entries {
		set := btree.NewBTreeG[data.Flag](flagLess)
		for _, flag := range e.flags {
			set.Set(flag)
		}

		c := &compiled{
			entry:     e,
			ordered:   set.Items(),
			supported: make(map[data.Flag]bool, len(e.flags)),
			mandatory: make(map[data.Flag]bool, len(e.required)),
		}
		for _, flag := range c.ordered {
			c.supported[flag] = true
		}
		for _, flag := range e.required {
			c.mandatory[flag] = true
		}

		result[e.command] = c
	}

	return result
}

// Commands returns every canonical command in registry order.
func Commands() []data.Command {
	commands := make([]data.Command, 0, len(entries))
	for _, e := range entries {
		commands = append(commands, e.command)
	}
	return commands
}

// Known reports whether the command is part of the registry.
func Known(command data.Command) bool {
	_, ok := registry[command]
	return ok
}

// SupportedFlags returns the support set of the command in emission order.
// Commands outside the registry support no flags.
func SupportedFlags(command data.Command) []data.Flag {
	c, ok := registry[command]
	if !ok {
		return nil
	}
	return append([]data.Flag(nil), c.ordered...)
}

func orderedFlags(command data.Command) []data.Flag {
	if c, ok := registry[command]; ok {
		return c.ordered
	}
	return nil
}

// Supports reports whether the flag is in the command's support set.
func Supports(command data.Command, flag data.Flag) bool {
	c, ok := registry[command]
	return ok && c.supported[flag]
}

// ArityOf returns the positional arity class of the command.
func ArityOf(command data.Command) Arity {
	if c, ok := registry[command]; ok {
		return c.arity
	}
	return ArityNone
}

// RequiresValue reports whether a missing or malformed value for the flag aborts
// parsing of the command.
func RequiresValue(command data.Command, flag data.Flag) bool {
	c, ok := registry[command]
	return ok && c.mandatory[flag]
}

// Sentinel returns the literal that stands for SentinelAll on the given
// command/flag pair, if any.
func Sentinel(command data.Command, flag data.Flag) (string, bool) {
	literal, ok := sentinels[sentinelKey{command: command, flag: flag}]
	return literal, ok
}

// Usage returns a usage line such as "media dump <input> <output> [flags]".
func Usage(command data.Command) string {
	parts := []string{command.Canonical()}

	switch ArityOf(command) {
	case ArityInput:
		parts = append(parts, "<input>")
	case ArityInputPair:
		parts = append(parts, "<input>", "<input2>")
	case ArityInputOutput:
		parts = append(parts, "<input>", "<output>")
	case ArityRemoteHost:
		parts = append(parts, "<host>")
	}

	if len(orderedFlags(command)) > 0 {
		parts = append(parts, "[flags]")
	}

	return strings.Join(parts, " ")
}
