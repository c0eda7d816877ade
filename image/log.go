package image

import (
	zlog "github.com/go-imsto/dimstat/log"
)

func logger() zlog.Logger {
	return zlog.Get()
}
