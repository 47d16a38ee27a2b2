//go:build windows

package winpath

// getLetterDrive recognizes "C:" (relative form, length 2) or "C:/" (absolute
// form, length 3, only when includeSep is requested and a separator follows).
// colon selects ':' vs '$' as the second byte, for the server\C$ UNC case.
func getLetterDrive(path string, start int, colon, includeSep bool) int {
	if start > len(path) || len(path)-start < 2 {
		return 0
	}
	c := path[start]
	if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
		return 0
	}
	want := byte('$')
	if colon {
		want = ':'
	}
	if path[start+1] != want {
		return 0
	}
	if includeSep && len(path)-start > 2 && IsSep(path[start+2]) {
		return 3
	}
	return 2
}

// getDOSDeviceIndicator recognizes "//." or "//?" followed by one or more
// separators, returning 0 if absent.
func getDOSDeviceIndicator(path string) int {
	if len(path) < 4 {
		return 0
	}
	if !IsSep(path[0]) || !IsSep(path[1]) {
		return 0
	}
	c := path[2]
	if c != '.' && c != '?' {
		return 0
	}
	seps := getSep(path, 3)
	if seps == 0 {
		return 0
	}
	return 3 + seps
}

// getUNCIndicator recognizes the leading "//" of a "//server/share" form.
func getUNCIndicator(path string) int {
	if getSep(path, 0) == 2 {
		return 2
	}
	return 0
}

// getDOSUNCIndicator recognizes "UNC" (case-insensitive) followed by one or
// more separators, as used in "//./UNC/server/share".
func getDOSUNCIndicator(path string, start int) int {
	if start+3 > len(path) {
		return 0
	}
	unc := path[start : start+3]
	if !(len(unc) == 3 && asciiEqualFold(unc, "unc")) {
		return 0
	}
	seps := getSep(path, start+3)
	if seps == 0 {
		return 0
	}
	return 3 + seps
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ac, bc := a[i], b[i]
		if ac >= 'A' && ac <= 'Z' {
			ac += 'a' - 'A'
		}
		if bc >= 'A' && bc <= 'Z' {
			bc += 'a' - 'A'
		}
		if ac != bc {
			return false
		}
	}
	return true
}

// getUNC recognizes "server/share" or "server/C$", returning the length
// consumed starting at start, or 0 if no well-formed UNC tail is present.
func getUNC(path string, start int) int {
	server := getNonSep(path, start)
	if server == 0 {
		return 0
	}
	sep := getSep(path, start+server)
	if sep == 0 {
		return 0
	}
	if drive := getLetterDrive(path, start+server+sep, false, false); drive != 0 {
		return server + sep + drive
	}
	share := getNonSep(path, start+server+sep)
	if share == 0 {
		return 0
	}
	return server + sep + share
}

// VolumeLen returns the length of the Windows volume prefix at the start of
// path, recognizing drive letters ("C:", "C:/"), UNC shares ("//server/share",
// "//server/C$"), and DOS device paths ("//./VOL", "//?/VOL", "//./UNC/...").
// It falls back to treating a single leading separator as a bare, rootless
// volume, matching Unix behavior, when none of the Windows-specific forms
// match.
func VolumeLen(path string) int {
	if n := getLetterDrive(path, 0, true, true); n != 0 {
		return n
	}

	if dosDev := getDOSDeviceIndicator(path); dosDev != 0 {
		if uncInd := getDOSUNCIndicator(path, dosDev); uncInd != 0 {
			if unc := getUNC(path, dosDev+uncInd); unc != 0 {
				return dosDev + uncInd + unc
			}
			return 0
		}
		if vol := getNonSep(path, dosDev); vol != 0 {
			return dosDev + vol
		}
		return 0
	}

	if uncInd := getUNCIndicator(path); uncInd != 0 {
		if unc := getUNC(path, uncInd); unc != 0 {
			return uncInd + unc
		}
		return 0
	}

	if len(path) > 0 && IsSep(path[0]) {
		return 1
	}
	return 0
}
