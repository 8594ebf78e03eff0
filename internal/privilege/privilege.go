// Package privilege reports whether the current process runs with the
// administrative rights the collectors need.
package privilege

// Elevated reports whether the process has administrative privileges:
// an elevated token on Windows, effective UID 0 elsewhere.
func Elevated() bool {
	return elevated()
}
