//go:build !windows

package winpath

// VolumeLen returns 1 if path has a leading separator (a bare Unix root),
// else 0. Non-Windows platforms have no drive letters or UNC forms.
func VolumeLen(path string) int {
	if len(path) > 0 && IsSep(path[0]) {
		return 1
	}
	return 0
}
