package logger

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given the logger package", t, func() {
		Convey("When creating a console-only logger", func() {
			log, err := New("info", "")

			Convey("It should log without panicking", func() {
				So(err, ShouldBeNil)
				So(log, ShouldNotBeNil)
				So(func() { log.Infof("hello %s", "world") }, ShouldNotPanic)
				So(func() { log.Close() }, ShouldNotPanic)
			})
		})

		Convey("When a log file is configured", func() {
			logFile := filepath.Join(t.TempDir(), "logs", "dumpship.log")
			log, err := New("debug", logFile)

			Convey("It should create the file on first write", func() {
				So(err, ShouldBeNil)
				log.Debugf("debug line")
				log.Sync()

				_, err := os.Stat(logFile)
				So(err, ShouldBeNil)
				log.Close()
			})
		})

		Convey("When the level string is unknown", func() {
			log, err := New("chatty", "")

			Convey("It should fall back to info", func() {
				So(err, ShouldBeNil)
				So(log, ShouldNotBeNil)
				So(func() { log.Infof("still works") }, ShouldNotPanic)
			})
		})

		Convey("When the log directory cannot be created", func() {
			log, err := New("info", "/proc/invalid/dumpship.log")

			Convey("It should return an error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "failed to create log directory")
				So(log, ShouldBeNil)
			})
		})
	})
}
