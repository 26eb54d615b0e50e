//go:build windows

// Package winsession ends interactive sessions through the WTS API, so a
// freshly applied lockout does not wait for the user's next logon.
package winsession

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"
)

var (
	wtsapi32                        = windows.NewLazySystemDLL("wtsapi32.dll")
	procWTSEnumerateSessionsW       = wtsapi32.NewProc("WTSEnumerateSessionsW")
	procWTSQuerySessionInformationW = wtsapi32.NewProc("WTSQuerySessionInformationW")
	procWTSLogoffSession            = wtsapi32.NewProc("WTSLogoffSession")
	procWTSFreeMemory               = wtsapi32.NewProc("WTSFreeMemory")
)

const (
	wtsCurrentServerHandle = 0
	wtsUserName            = 5
)

type Control struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Control {
	return &Control{log: log}
}

// LogoffUser logs off every interactive session belonging to username.
// Session 0 (services) is never touched.
func (c *Control) LogoffUser(username string) error {
	sessions, err := enumerateSessions()
	if err != nil {
		return fmt.Errorf("enumerate sessions: %w", err)
	}
	var lastErr error
	for _, sid := range sessions {
		if sid == 0 {
			continue
		}
		uname, err := sessionUsername(sid)
		if err != nil {
			continue
		}
		// Match bare username or "DOMAIN\username".
		namePart := uname
		if idx := strings.Index(uname, "\\"); idx >= 0 {
			namePart = uname[idx+1:]
		}
		if !strings.EqualFold(namePart, username) {
			continue
		}
		if err := logoffSession(sid); err != nil {
			c.log.Warn().Uint32("session", sid).Str("user", uname).Err(err).Msg("logoff failed")
			lastErr = err
		} else {
			c.log.Info().Uint32("session", sid).Str("user", uname).Msg("logged off session")
		}
	}
	return lastErr
}

// WTS_SESSION_INFO layout for 64-bit: SessionId(4) + padding(4) +
// pWinStationName(8) + State(4) + padding(4) = 24 bytes.
type wtsSessionInfo struct {
	SessionID  uint32
	_          uint32
	WinStation uintptr
	State      uint32
	_          uint32
}

func enumerateSessions() ([]uint32, error) {
	var infoPtr uintptr
	var count uint32
	r1, _, err := procWTSEnumerateSessionsW.Call(
		wtsCurrentServerHandle,
		0, // reserved
		1, // version
		uintptr(unsafe.Pointer(&infoPtr)),
		uintptr(unsafe.Pointer(&count)),
	)
	if r1 == 0 {
		return nil, err
	}
	defer procWTSFreeMemory.Call(infoPtr)

	if infoPtr == 0 {
		return nil, nil
	}

	var sess []uint32
	offset := infoPtr
	for i := uint32(0); i < count; i++ {
		si := (*wtsSessionInfo)(unsafe.Pointer(offset))
		sess = append(sess, si.SessionID)
		offset += unsafe.Sizeof(wtsSessionInfo{})
	}
	return sess, nil
}

func sessionUsername(sessionID uint32) (string, error) {
	var infoPtr uintptr
	var bytes uint32
	r1, _, err := procWTSQuerySessionInformationW.Call(
		wtsCurrentServerHandle,
		uintptr(sessionID),
		wtsUserName,
		uintptr(unsafe.Pointer(&infoPtr)),
		uintptr(unsafe.Pointer(&bytes)),
	)
	if r1 == 0 {
		return "", err
	}
	defer procWTSFreeMemory.Call(infoPtr)
	if infoPtr == 0 {
		return "", fmt.Errorf("no username")
	}
	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(infoPtr))), nil
}

func logoffSession(sessionID uint32) error {
	r1, _, err := procWTSLogoffSession.Call(
		wtsCurrentServerHandle,
		uintptr(sessionID),
		0, // wait for logoff to complete
	)
	if r1 == 0 {
		return err
	}
	return nil
}
