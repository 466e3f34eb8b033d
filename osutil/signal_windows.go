package osutil

import (
	"os"
)

func StatusNotify(c chan os.Signal) {
}

func StatusStop(c chan os.Signal) {
}

func IsSignalUSR1(s os.Signal) bool {
	return false
}
