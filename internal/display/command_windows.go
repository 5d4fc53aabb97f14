//go:build windows

package display

func clearCommand() (string, []string) {
	return "cmd", []string{"/c", "cls"}
}
