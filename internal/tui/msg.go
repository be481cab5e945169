package tui

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgError is sent when an action fails. The error stays visible until the next action.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgNotice is sent to show a transient status message.
type MsgNotice struct {
	Text string
}

func (MsgNotice) sealed() {}

// MsgClearNotice clears the notice with the given sequence number.
// Older clears are ignored so a new notice is not cut short.
type MsgClearNotice struct {
	Seq int
}

func (MsgClearNotice) sealed() {}
