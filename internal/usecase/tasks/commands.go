package tasks

import (
	"strings"

	"github.com/cobalt/screentime/internal/domain"
)

// Fixed task identifiers, kept stable so tasks created by earlier versions
// are found, replaced and removed idempotently.
const (
	RestartTaskName      = "DailyAutoRestartByMyScript"
	NotificationTaskName = "DailyAutoRestartNotificationByMyScript"
)

const restartAction = "shutdown /r /f /t 0"

func createRestartArgs(at domain.TimeOfDay) []string {
	return []string{
		"schtasks", "/create", "/tn", RestartTaskName,
		"/tr", restartAction, "/sc", "DAILY", "/st", at.String(),
		"/ru", "SYSTEM", "/f",
	}
}

func createNotificationArgs(at domain.TimeOfDay, message string) []string {
	return []string{
		"schtasks", "/create", "/tn", NotificationTaskName,
		"/tr", notificationAction(message),
		"/sc", "DAILY", "/st", at.String(),
		"/rl", "HIGHEST", "/it", "/f",
	}
}

// notificationAction broadcasts the message to all interactive sessions.
// Embedded quotes are doubled so the shell passes the message as one
// literal argument.
func notificationAction(message string) string {
	escaped := strings.ReplaceAll(message, `"`, `""`)
	return `msg.exe * "` + escaped + `"`
}

func deleteArgs(taskName string) []string {
	return []string{"schtasks", "/delete", "/tn", taskName, "/f"}
}

func queryArgs(taskName string) []string {
	return []string{"schtasks", "/query", "/tn", taskName, "/fo", "LIST"}
}
