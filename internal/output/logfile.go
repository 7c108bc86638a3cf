package output

import "os"

// LogFileEnv names the environment variable providing the default log file
const LogFileEnv = "GITSPLIT_LOG_FILE"

// GetLogFilePath returns the log file path from GITSPLIT_LOG_FILE.
// An empty path disables file logging.
func GetLogFilePath() string {
	return os.Getenv(LogFileEnv)
}
