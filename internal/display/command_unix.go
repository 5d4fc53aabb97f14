//go:build !windows

package display

func clearCommand() (string, []string) {
	return "clear", nil
}
