package paths

import (
	"flag"
)

// SetupDirPathFlag creates a new string flag with the passed name with a sane
// default for the path to the asset directory, if found using the FindDir
// function. If not, the flag defaults to an empty string.
func SetupDirPathFlag(dirName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, FindDir(dirName), "Path to the "+dirName+" directory")
}

// SetupFilePathFlag is the file counterpart of SetupDirPathFlag.
func SetupFilePathFlag(fileName, flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, FindFile(fileName), "Path to "+fileName)
}
