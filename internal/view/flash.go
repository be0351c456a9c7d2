package view

import (
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages shown at the top of the next page.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		slog.Warn("Flash session unavailable", "error", err)
		return
	}
	sess.AddFlash(message, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save flash session", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// SetFormValue keeps a submitted form field across the redirect that follows a failed POST.
func SetFormValue(c echo.Context, field, value string) {
	setFlash(c, "form_"+field, value)
}

// PopFormValue returns and clears a value stored with SetFormValue.
func PopFormValue(c echo.Context, field string) string {
	values := popStrings(c, "form_"+field)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// GetFlashData retrieves and clears the success and error flash messages.
func GetFlashData(c echo.Context) FlashData {
	return FlashData{
		Success: popStrings(c, flashKeySuccess),
		Error:   popStrings(c, flashKeyError),
	}
}

func popStrings(c echo.Context, key string) []string {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return nil
	}

	// Flashes() removes the values from the session; saving persists that.
	raw := sess.Flashes(key)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
