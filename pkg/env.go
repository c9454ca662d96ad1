package pkg

import "os"

// GetenvDefault returns the value of the environment variable key, or def when
// it is unset or empty.
func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
