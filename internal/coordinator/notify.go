package coordinator

import (
	"errors"
	"fmt"

	"vehicle-auctions/internal/auctionerrors"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

const (
	HomePath  = "/"
	LoginPath = "/login"
)

// Notification is what the view shows after an action settles
type Notification struct {
	Level    Level  `json:"level"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// Notify turns the result of a bid or restart into a user-facing notification
func Notify(action Action, err error) Notification {
	if err == nil {
		if action == ActionRestart {
			return Notification{Level: LevelSuccess, Message: "Auction restarted!.", Redirect: HomePath}
		}
		return Notification{Level: LevelSuccess, Message: "Bid created successfully."}
	}

	switch {
	case errors.Is(err, auctionerrors.ErrUnauthenticated):
		return Notification{Level: LevelInfo, Message: "Please log in to continue.", Redirect: LoginPath}
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return Notification{Level: LevelWarning, Message: "Enter a bid amount greater than zero."}
	case errors.Is(err, auctionerrors.ErrInvalidDuration):
		return Notification{Level: LevelWarning, Message: "Choose a duration: minute, hour, day, week or month."}
	case errors.Is(err, auctionerrors.ErrSubmissionInFlight):
		return Notification{Level: LevelWarning, Message: "A request for this auction is still pending."}
	}

	return Notification{Level: LevelError, Message: errorPrefix(action) + detail(err)}
}

func errorPrefix(action Action) string {
	if action == ActionRestart {
		return "Error restart auction: "
	}
	return "Error creating bid: "
}

func detail(err error) string {
	if msg, ok := auctionerrors.ServerMessage(err); ok {
		return msg
	}
	switch {
	case errors.Is(err, auctionerrors.ErrNetwork):
		return auctionerrors.ErrNetwork.Error()
	case errors.Is(err, auctionerrors.ErrRestartNotAllowed):
		return auctionerrors.ErrRestartNotAllowed.Error()
	}
	return fmt.Sprint(err)
}
