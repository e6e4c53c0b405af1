package common

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ToastKind selects the colour and icon of a toast
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

const flashCookieName = "Flash"

// Toast is a transient notification shown on top of a page
type Toast struct {
	Kind    ToastKind
	Message string
}

func NewSuccessToast(message string) *Toast {
	return &Toast{Kind: ToastSuccess, Message: message}
}

func NewErrorToast(message string) *Toast {
	return &Toast{Kind: ToastError, Message: message}
}

func NewInfoToast(message string) *Toast {
	return &Toast{Kind: ToastInfo, Message: message}
}

// SetFlash stores a toast in a short lived cookie so it survives the redirect that follows
func SetFlash(ctx *gin.Context, toast *Toast) {
	ctx.SetCookie(flashCookieName, string(toast.Kind)+"|"+toast.Message, 60, "/", "", false, true)
}

// PopFlash returns the toast stored by SetFlash and clears it.
// Returns nil when there is no valid toast.
func PopFlash(ctx *gin.Context) *Toast {
	value, err := ctx.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	parts := strings.SplitN(value, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	switch kind := ToastKind(parts[0]); kind {
	case ToastSuccess, ToastError, ToastInfo:
		return &Toast{Kind: kind, Message: parts[1]}
	}
	return nil
}
