package config

import "os"

func IsDebug() bool {
	return os.Getenv("NYAYA_DEBUG") == "1"
}
