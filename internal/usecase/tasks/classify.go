package tasks

import "strings"

// defaultNotFoundPhrases are the fragments schtasks prints when asked to
// delete or query a task that does not exist. The Hebrew phrases cover the
// localized builds this tool has been deployed on.
var defaultNotFoundPhrases = []string{
	"ERROR: The specified task name",
	"cannot find the task",
	"cannot find the file specified",
	"לא נמצאה",
	"לא היתה מופעלת",
}

// IsNotFoundOutput reports whether command output matches any of the
// recognized "item already absent" phrases. The phrase set is injectable so
// additional locales can be classified without touching call sites.
func IsNotFoundOutput(output string, phrases []string) bool {
	for _, p := range phrases {
		if p != "" && strings.Contains(output, p) {
			return true
		}
	}
	return false
}
