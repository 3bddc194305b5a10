package constants

// LibraryName contains the main name of this library
const LibraryName = "launcher"

// LibraryOwner contains the name of the owner of this library
const LibraryOwner = "ActiveState"

// LibraryNamespace is the namespace that the library belongs to
const LibraryNamespace = "github.com/ActiveState/"

// CommandName holds the name of our command
const CommandName = "launcher"

// HelpFlagName is the long name of the flag that shows usage and exits
const HelpFlagName = "help"

// HelpFlagShorthand is the short name of the help flag
const HelpFlagShorthand = "h"

// VerboseFlagName is the long name of the flag that enables diagnostic output
const VerboseFlagName = "verbose"

// VerboseFlagShorthand is the short name of the verbose flag
const VerboseFlagShorthand = "v"

// UsageLine is the synopsis shown in the help text
const UsageLine = CommandName + " [-h/--help] [-v/--verbose] [prog] [args]"

// ExitSuccess is returned when the program ran, or when help was shown
const ExitSuccess = 0

// ExitFailure is returned when the platform is unsupported or when the program could not be launched
const ExitFailure = 1
