package display

import "fmt"

// FormatRemaining renders whole seconds as the countdown readout: MM:SS
// under an hour, H:MM:SS under a day, and "Nd HH:MM:SS" beyond that.
func FormatRemaining(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	days := secs / 86400
	hours := (secs % 86400) / 3600
	mins := (secs % 3600) / 60
	s := secs % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, mins, s)
	case hours > 0:
		return fmt.Sprintf("%d:%02d:%02d", hours, mins, s)
	default:
		return fmt.Sprintf("%02d:%02d", mins, s)
	}
}
