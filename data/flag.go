package data

// FlagKind identifies the type of value a flag carries on the command line.
type FlagKind int

const (
	KindBoolean FlagKind = iota // Presence only, no value token
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindString
)

func (k FlagKind) String() string {
	switch k {
	case KindBoolean:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Flag identifies a single entry of the flag vocabulary.
// The zero value is FlagNone and never appears on the command line.
type Flag int

const (
	FlagNone Flag = iota

	// Pre-command flags
	FlagDebug
	FlagHelp
	FlagPause
	FlagVerbose
	FlagVersion

	// Boolean flags
	FlagAdler32
	FlagClear
	FlagClearAll
	FlagCRC16
	FlagCRC32
	FlagCRC64
	FlagDiskTags
	FlagDuplicatedSectors
	FlagEject
	FlagExtendedAttributes
	FlagFilesystems
	FlagFirstPregap
	FlagFixOffset
	FlagFixSubchannel
	FlagFixSubchannelCrc
	FlagFixSubchannelPosition
	FlagFletcher16
	FlagFletcher32
	FlagForce
	FlagGenerateSubchannels
	FlagLongFormat
	FlagLongSectors
	FlagMD5
	FlagMetadata
	FlagPartitions
	FlagPersistent
	FlagPrivate
	FlagResume
	FlagRetrySubchannel
	FlagSectorTags
	FlagSeparatedTracks
	FlagSHA1
	FlagSHA256
	FlagSHA384
	FlagSHA512
	FlagSkipCdiReadyHole
	FlagSpamSum
	FlagStopOnError
	FlagStoreEncrypted
	FlagTape
	FlagTitleKeys
	FlagTrapDisc
	FlagTrim
	FlagUseBufferedReads
	FlagVerifyDisc
	FlagVerifySectors
	FlagWholeDisc

	// Int8 flags
	FlagSpeed

	// Int16 flags
	FlagRetryPasses
	FlagWidth

	// Int32 flags
	FlagBlockSize
	FlagCount
	FlagMaxBlocks
	FlagMediaLastSequence
	FlagMediaSequence
	FlagSkip

	// Int64 flags
	FlagLength
	FlagStart

	// String flags
	FlagComments
	FlagCreator
	FlagDriveManufacturer
	FlagDriveModel
	FlagDriveRevision
	FlagDriveSerial
	FlagEncoding
	FlagFormat
	FlagGeometry
	FlagImgBurnLog
	FlagMediaBarcode
	FlagMediaManufacturer
	FlagMediaModel
	FlagMediaPartNumber
	FlagMediaSerial
	FlagMediaTitle
	FlagMHDDLog
	FlagNamespace
	FlagOptions
	FlagOutputPrefix
	FlagResumeFile
	FlagSubchannel
	FlagXMLSidecar

	flagCount
)

// FlagInfo describes the spellings and value kind of a flag.
type FlagInfo struct {
	Long  string   `json:"long"`
	Short string   `json:"short,omitempty"`
	Kind  FlagKind `json:"kind"`
}

var vocabulary = [flagCount]FlagInfo{
	FlagDebug:   {Long: "debug", Short: "d", Kind: KindBoolean},
	FlagHelp:    {Long: "help", Short: "h", Kind: KindBoolean},
	FlagPause:   {Long: "pause", Kind: KindBoolean},
	FlagVerbose: {Long: "verbose", Short: "v", Kind: KindBoolean},
	FlagVersion: {Long: "version", Kind: KindBoolean},

	FlagAdler32:               {Long: "adler32", Short: "a", Kind: KindBoolean},
	FlagClear:                 {Long: "clear", Kind: KindBoolean},
	FlagClearAll:              {Long: "clear-all", Kind: KindBoolean},
	FlagCRC16:                 {Long: "crc16", Kind: KindBoolean},
	FlagCRC32:                 {Long: "crc32", Short: "c", Kind: KindBoolean},
	FlagCRC64:                 {Long: "crc64", Kind: KindBoolean},
	FlagDiskTags:              {Long: "disk-tags", Short: "f", Kind: KindBoolean},
	FlagDuplicatedSectors:     {Long: "duplicated-sectors", Short: "p", Kind: KindBoolean},
	FlagEject:                 {Long: "eject", Kind: KindBoolean},
	FlagExtendedAttributes:    {Long: "xattrs", Short: "x", Kind: KindBoolean},
	FlagFilesystems:           {Long: "filesystems", Short: "f", Kind: KindBoolean},
	FlagFirstPregap:           {Long: "first-pregap", Kind: KindBoolean},
	FlagFixOffset:             {Long: "fix-offset", Kind: KindBoolean},
	FlagFixSubchannel:         {Long: "fix-subchannel", Kind: KindBoolean},
	FlagFixSubchannelCrc:      {Long: "fix-subchannel-crc", Kind: KindBoolean},
	FlagFixSubchannelPosition: {Long: "fix-subchannel-position", Kind: KindBoolean},
	FlagFletcher16:            {Long: "fletcher16", Kind: KindBoolean},
	FlagFletcher32:            {Long: "fletcher32", Kind: KindBoolean},
	FlagForce:                 {Long: "force", Short: "f", Kind: KindBoolean},
	FlagGenerateSubchannels:   {Long: "generate-subchannels", Kind: KindBoolean},
	FlagLongFormat:            {Long: "long-format", Short: "l", Kind: KindBoolean},
	FlagLongSectors:           {Long: "long-sectors", Short: "r", Kind: KindBoolean},
	FlagMD5:                   {Long: "md5", Short: "m", Kind: KindBoolean},
	FlagMetadata:              {Long: "metadata", Kind: KindBoolean},
	FlagPartitions:            {Long: "partitions", Short: "p", Kind: KindBoolean},
	FlagPersistent:            {Long: "persistent", Kind: KindBoolean},
	FlagPrivate:               {Long: "private", Kind: KindBoolean},
	FlagResume:                {Long: "resume", Short: "r", Kind: KindBoolean},
	FlagRetrySubchannel:       {Long: "retry-subchannel", Kind: KindBoolean},
	FlagSectorTags:            {Long: "sector-tags", Short: "p", Kind: KindBoolean},
	FlagSeparatedTracks:       {Long: "separated-tracks", Short: "t", Kind: KindBoolean},
	FlagSHA1:                  {Long: "sha1", Short: "s", Kind: KindBoolean},
	FlagSHA256:                {Long: "sha256", Kind: KindBoolean},
	FlagSHA384:                {Long: "sha384", Kind: KindBoolean},
	FlagSHA512:                {Long: "sha512", Kind: KindBoolean},
	FlagSkipCdiReadyHole:      {Long: "skip-cdiready-hole", Kind: KindBoolean},
	FlagSpamSum:               {Long: "spamsum", Short: "f", Kind: KindBoolean},
	FlagStopOnError:           {Long: "stop-on-error", Short: "s", Kind: KindBoolean},
	FlagStoreEncrypted:        {Long: "store-encrypted", Kind: KindBoolean},
	FlagTape:                  {Long: "tape", Short: "t", Kind: KindBoolean},
	FlagTitleKeys:             {Long: "title-keys", Kind: KindBoolean},
	FlagTrapDisc:              {Long: "trap-disc", Short: "t", Kind: KindBoolean},
	FlagTrim:                  {Long: "trim", Kind: KindBoolean},
	FlagUseBufferedReads:      {Long: "use-buffered-reads", Kind: KindBoolean},
	FlagVerifyDisc:            {Long: "verify-disc", Short: "w", Kind: KindBoolean},
	FlagVerifySectors:         {Long: "verify-sectors", Short: "s", Kind: KindBoolean},
	FlagWholeDisc:             {Long: "whole-disc", Short: "w", Kind: KindBoolean},

	FlagSpeed: {Long: "speed", Kind: KindInt8},

	FlagRetryPasses: {Long: "retry-passes", Short: "p", Kind: KindInt16},
	FlagWidth:       {Long: "width", Short: "w", Kind: KindInt16},

	FlagBlockSize:         {Long: "block-size", Short: "b", Kind: KindInt32},
	FlagCount:             {Long: "count", Short: "c", Kind: KindInt32},
	FlagMaxBlocks:         {Long: "max-blocks", Kind: KindInt32},
	FlagMediaLastSequence: {Long: "media-last-sequence", Kind: KindInt32},
	FlagMediaSequence:     {Long: "media-sequence", Kind: KindInt32},
	FlagSkip:              {Long: "skip", Short: "k", Kind: KindInt32},

	FlagLength: {Long: "length", Short: "l", Kind: KindInt64},
	FlagStart:  {Long: "start", Short: "s", Kind: KindInt64},

	FlagComments:          {Long: "comments", Kind: KindString},
	FlagCreator:           {Long: "creator", Kind: KindString},
	FlagDriveManufacturer: {Long: "drive-manufacturer", Kind: KindString},
	FlagDriveModel:        {Long: "drive-model", Kind: KindString},
	FlagDriveRevision:     {Long: "drive-revision", Kind: KindString},
	FlagDriveSerial:       {Long: "drive-serial", Kind: KindString},
	FlagEncoding:          {Long: "encoding", Short: "e", Kind: KindString},
	FlagFormat:            {Long: "format", Short: "t", Kind: KindString},
	FlagGeometry:          {Long: "geometry", Short: "g", Kind: KindString},
	FlagImgBurnLog:        {Long: "ibg-log", Short: "b", Kind: KindString},
	FlagMediaBarcode:      {Long: "media-barcode", Kind: KindString},
	FlagMediaManufacturer: {Long: "media-manufacturer", Kind: KindString},
	FlagMediaModel:        {Long: "media-model", Kind: KindString},
	FlagMediaPartNumber:   {Long: "media-part-number", Kind: KindString},
	FlagMediaSerial:       {Long: "media-serial", Kind: KindString},
	FlagMediaTitle:        {Long: "media-title", Kind: KindString},
	FlagMHDDLog:           {Long: "mhdd-log", Short: "m", Kind: KindString},
	FlagNamespace:         {Long: "namespace", Short: "n", Kind: KindString},
	FlagOptions:           {Long: "options", Short: "O", Kind: KindString},
	FlagOutputPrefix:      {Long: "output-prefix", Short: "w", Kind: KindString},
	FlagResumeFile:        {Long: "resume-file", Short: "r", Kind: KindString},
	FlagSubchannel:        {Long: "subchannel", Kind: KindString},
	FlagXMLSidecar:        {Long: "cicm-xml", Short: "x", Kind: KindString},
}

// PreCommandFlags lists the global flags accepted before the command, in emission order.
var PreCommandFlags = []Flag{
	FlagDebug,
	FlagHelp,
	FlagPause,
	FlagVerbose,
	FlagVersion,
}

// AllFlags returns every flag of the vocabulary in declaration order.
func AllFlags() []Flag {
	flags := make([]Flag, 0, flagCount-1)
	for f := FlagNone + 1; f < flagCount; f++ {
		flags = append(flags, f)
	}
	return flags
}

// Valid reports whether f is part of the vocabulary.
func (f Flag) Valid() bool {
	return f > FlagNone && f < flagCount
}

// Info returns the vocabulary entry for f.
func (f Flag) Info() FlagInfo {
	if !f.Valid() {
		return FlagInfo{}
	}
	return vocabulary[f]
}

func (f Flag) Long() string {
	return f.Info().Long
}

func (f Flag) Short() string {
	return f.Info().Short
}

func (f Flag) Kind() FlagKind {
	return f.Info().Kind
}

// IsPreCommand reports whether f is one of the global flags preceding the command.
func (f Flag) IsPreCommand() bool {
	return f >= FlagDebug && f <= FlagVersion
}

// LongToken returns the wire spelling "--long".
func (f Flag) LongToken() string {
	return "--" + f.Long()
}

// Matches reports whether token is one of the spellings of f.
func (f Flag) Matches(token string) bool {
	info := f.Info()
	if info.Long == "" {
		return false
	}
	if token == "--"+info.Long {
		return true
	}
	if info.Short != "" && token == "-"+info.Short {
		return true
	}
	// "-?" is the traditional alias of help
	return f == FlagHelp && token == "-?"
}

func (f Flag) String() string {
	if !f.Valid() {
		return "none"
	}
	return f.Long()
}

// LookupFlag resolves a long name (without dashes) to its flag.
func LookupFlag(long string) (Flag, bool) {
	for f := FlagNone + 1; f < flagCount; f++ {
		if vocabulary[f].Long == long {
			return f, true
		}
	}
	return FlagNone, false
}
