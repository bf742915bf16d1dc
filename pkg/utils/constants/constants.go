package constants

const (
	// AppName is the binary name and the prefix of its config file
	AppName = "ip_gen"

	// UtilsAppName is the binary carrying the addr-conv, ip-type, is-v6 and info helpers
	UtilsAppName = "ip_gen_utils"

	// EnvPrefix is prepended to config keys when read from the environment, e.g. IP_GEN_DEBUG
	EnvPrefix = "IP_GEN"

	// DefaultConfigName is looked up in the home directory when --config is not set
	DefaultConfigName = ".ip_gen.yaml"

	// ExitSuccess is returned for every completed run, including an out of range target
	ExitSuccess = 0
	// ExitFailure is returned for any parse or lookup failure
	ExitFailure = 1

	// Log rotation settings for --log-file
	LogFileMaxSizeMB  = 10
	LogFileMaxBackups = 3
	LogFileMaxAgeDays = 7

	// AddrConvNone is printed by addr-conv when no address can be generated
	AddrConvNone = "None"

	IPTypeIP  = "IP"
	IPTypeDNS = "DNS"
)
