package bridge

import "os"

// defaultDLLCandidates are the common WindowsAccessBridge install locations
// probed when neither the environment nor the config file names a path.
var defaultDLLCandidates = []string{
	`C:\Program Files\Java\jre\bin\WindowsAccessBridge-64.dll`,
	`C:\Program Files\Java\jdk\bin\WindowsAccessBridge-64.dll`,
	`C:\Program Files\Java\jdk-17\bin\WindowsAccessBridge-64.dll`,
	`C:\Program Files\Java\jdk-21\bin\WindowsAccessBridge-64.dll`,
}

// ProbeDLL resolves the Access Bridge DLL location. An explicit override
// (from the environment or config file) wins when it points at an existing
// file; otherwise the common install locations are probed in order. Returns
// "" when nothing is found, which the UI surfaces as a prompt.
//
// exists is injected for tests; pass nil for an os.Stat regular-file check.
func ProbeDLL(override string, exists func(string) bool) string {
	if exists == nil {
		exists = fileExists
	}

	if override != "" && exists(override) {
		return override
	}

	for _, candidate := range defaultDLLCandidates {
		if exists(candidate) {
			return candidate
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
